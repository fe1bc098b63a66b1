package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const logisticArtifact = `{
  "model_type": "logistic",
  "version": "2025.1",
  "feature_names": ["innings_score_1st", "score_vs_winning_avg"],
  "coefficients": [0.02, 0.05],
  "intercept": -3.4
}`

const linearArtifact = `{
  "model_type": "linear",
  "version": "2025.1",
  "feature_names": ["innings_score_1st", "score_vs_winning_avg"],
  "coefficients": [0.1, 0.5],
  "intercept": -4.0
}`

func TestLoadArtifact(t *testing.T) {
	path := writeArtifact(t, "win.json", logisticArtifact)

	a, err := LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, TypeLogistic, a.ModelType)
	assert.Equal(t, "2025.1", a.Version)
	assert.Equal(t, []string{"innings_score_1st", "score_vs_winning_avg"}, a.FeatureNames)
	assert.Len(t, a.Coefficients, 2)
	assert.InDelta(t, -3.4, a.Intercept, 1e-9)
}

func TestLoadArtifactMissing(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrArtifactMissing)
}

func TestLoadArtifactMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "garbage"},
		{"unknown type", `{"model_type": "forest", "version": "1", "feature_names": ["a"], "coefficients": [1.0], "intercept": 0}`},
		{"empty schema", `{"model_type": "logistic", "version": "1", "feature_names": [], "coefficients": [], "intercept": 0}`},
		{"dimension mismatch", `{"model_type": "logistic", "version": "1", "feature_names": ["a", "b"], "coefficients": [1.0], "intercept": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, "bad.json", tt.body)
			_, err := LoadArtifact(path)
			assert.ErrorIs(t, err, ErrArtifactMalformed)
		})
	}
}

func TestLoadWinProbabilityModelTypeMismatch(t *testing.T) {
	path := writeArtifact(t, "win.json", linearArtifact)
	_, err := LoadWinProbabilityModel(path)
	assert.ErrorIs(t, err, ErrModelTypeMismatch)
}

func TestLoadMarginModelTypeMismatch(t *testing.T) {
	path := writeArtifact(t, "margin.json", logisticArtifact)
	_, err := LoadMarginModel(path)
	assert.ErrorIs(t, err, ErrModelTypeMismatch)
}

func TestPredictProbability(t *testing.T) {
	m, err := LoadWinProbabilityModel(writeArtifact(t, "win.json", logisticArtifact))
	require.NoError(t, err)

	// z = 0.02*170 + 0.05*5 - 3.4 = 0.25
	p, err := m.PredictProbability([]float64{170, 5})
	require.NoError(t, err)
	want := 1.0 / (1.0 + math.Exp(-0.25))
	assert.InDelta(t, want, p, 1e-9)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestPredictMargin(t *testing.T) {
	m, err := LoadMarginModel(writeArtifact(t, "margin.json", linearArtifact))
	require.NoError(t, err)

	// 0.1*170 + 0.5*5 - 4.0 = 15.5
	margin, err := m.PredictMargin([]float64{170, 5})
	require.NoError(t, err)
	assert.InDelta(t, 15.5, margin, 1e-9)
}

func TestPredictFeatureDimension(t *testing.T) {
	m, err := LoadWinProbabilityModel(writeArtifact(t, "win.json", logisticArtifact))
	require.NoError(t, err)

	_, err = m.PredictProbability([]float64{170})
	assert.ErrorIs(t, err, ErrFeatureDimension)
}
