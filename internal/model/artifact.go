// Package model loads and evaluates the externally-trained outcome models.
//
// The training pipeline serializes each model as a JSON artifact holding the
// ordered feature schema and the fitted coefficients. Both artifacts are
// loaded once at process start; evaluation is a pure function of the feature
// vector, so loaded models are safe for concurrent use.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model types accepted in artifacts.
const (
	TypeLogistic = "logistic"
	TypeLinear   = "linear"
)

// Artifact is the on-disk representation of a trained model.
type Artifact struct {
	ModelType    string    `json:"model_type"`
	Version      string    `json:"version"`
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// LoadArtifact reads and validates a model artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactMissing, err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactMalformed, err)
	}

	if a.ModelType != TypeLogistic && a.ModelType != TypeLinear {
		return nil, fmt.Errorf("%w: unknown model_type %q", ErrArtifactMalformed, a.ModelType)
	}
	if len(a.FeatureNames) == 0 {
		return nil, fmt.Errorf("%w: empty feature schema", ErrArtifactMalformed)
	}
	if len(a.FeatureNames) != len(a.Coefficients) {
		return nil, fmt.Errorf("%w: %d feature names but %d coefficients",
			ErrArtifactMalformed, len(a.FeatureNames), len(a.Coefficients))
	}

	return &a, nil
}
