package model

import (
	"fmt"
	"math"
)

// WinProbabilityModel estimates the probability that the batting-first side
// wins, given a feature vector in the model's schema order. Output is in [0,1].
type WinProbabilityModel struct {
	artifact *Artifact
}

// MarginModel estimates the winning margin in runs. The raw estimate is
// unbounded and advisory only; callers must never surface it directly.
type MarginModel struct {
	artifact *Artifact
}

// LoadWinProbabilityModel loads the probability classifier artifact.
func LoadWinProbabilityModel(path string) (*WinProbabilityModel, error) {
	a, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	if a.ModelType != TypeLogistic {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrModelTypeMismatch, TypeLogistic, a.ModelType)
	}
	return &WinProbabilityModel{artifact: a}, nil
}

// LoadMarginModel loads the margin regressor artifact.
func LoadMarginModel(path string) (*MarginModel, error) {
	a, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	if a.ModelType != TypeLinear {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrModelTypeMismatch, TypeLinear, a.ModelType)
	}
	return &MarginModel{artifact: a}, nil
}

// FeatureNames returns the ordered feature schema captured at load time.
func (m *WinProbabilityModel) FeatureNames() []string {
	return m.artifact.FeatureNames
}

// Version returns the artifact version string.
func (m *WinProbabilityModel) Version() string {
	return m.artifact.Version
}

// PredictProbability evaluates the logistic model on a feature vector.
func (m *WinProbabilityModel) PredictProbability(features []float64) (float64, error) {
	z, err := dot(m.artifact, features)
	if err != nil {
		return 0, err
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}

// FeatureNames returns the ordered feature schema captured at load time.
func (m *MarginModel) FeatureNames() []string {
	return m.artifact.FeatureNames
}

// Version returns the artifact version string.
func (m *MarginModel) Version() string {
	return m.artifact.Version
}

// PredictMargin evaluates the linear model on a feature vector.
func (m *MarginModel) PredictMargin(features []float64) (float64, error) {
	return dot(m.artifact, features)
}

func dot(a *Artifact, features []float64) (float64, error) {
	if len(features) != len(a.Coefficients) {
		return 0, fmt.Errorf("%w: want %d, got %d", ErrFeatureDimension, len(a.Coefficients), len(features))
	}
	sum := a.Intercept
	for i, c := range a.Coefficients {
		sum += c * features[i]
	}
	return sum, nil
}
