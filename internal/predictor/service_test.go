package predictor

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitch-oracle/internal/config"
	"github.com/yourusername/pitch-oracle/internal/models"
)

type fakeStore struct {
	venues map[string]models.VenueStats
}

func (s *fakeStore) Lookup(venue string) (models.VenueStats, error) {
	vs, ok := s.venues[venue]
	if !ok {
		return models.VenueStats{}, fmt.Errorf("%w: %q", models.ErrVenueNotFound, venue)
	}
	return vs, nil
}

type fakeWinModel struct {
	probability float64
	calls       int
}

func (m *fakeWinModel) FeatureNames() []string { return []string{"innings_score_1st"} }
func (m *fakeWinModel) Version() string        { return "test.1" }
func (m *fakeWinModel) PredictProbability(features []float64) (float64, error) {
	m.calls++
	return m.probability, nil
}

type fakeMarginModel struct {
	margin float64
}

func (m *fakeMarginModel) FeatureNames() []string { return []string{"innings_score_1st"} }
func (m *fakeMarginModel) PredictMargin(features []float64) (float64, error) {
	return m.margin, nil
}

func testService(winProb, rawMargin float64) (*Service, *fakeWinModel) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := &fakeStore{venues: map[string]models.VenueStats{
		"Chennai": {Venue: "Chennai", AvgFirstInningsScore: 168.5, AvgWinningScore: 165.0},
	}}
	win := &fakeWinModel{probability: winProb}
	margin := &fakeMarginModel{margin: rawMargin}

	cfg := &config.PredictorConfig{
		MinScore:        100,
		MaxScore:        300,
		CacheTTLSeconds: 60,
		CacheMaxSize:    10,
	}

	return NewService(cfg, store, win, margin, log), win
}

// TestServicePredict tests the end-to-end worked example
func TestServicePredict(t *testing.T) {
	svc, _ := testService(0.55, 12.0)

	result, err := svc.Predict(models.PredictionRequest{Venue: "Chennai", Score: 170})
	require.NoError(t, err)

	assert.InDelta(t, 0.6687, result.Probability, 0.001)
	require.NotNil(t, result.Margin)
	assert.Equal(t, 6, *result.Margin)
	assert.Equal(t, models.OutcomeBattingWin, result.Outcome)
	assert.Equal(t, "test.1", result.ModelVersion)
	assert.NotEqual(t, "", result.ID.String())
}

// TestServicePredictBelowBaseline tests the too-close path
func TestServicePredictBelowBaseline(t *testing.T) {
	svc, _ := testService(0.9, 120.0)

	result, err := svc.Predict(models.PredictionRequest{Venue: "Chennai", Score: 150})
	require.NoError(t, err)

	assert.Nil(t, result.Margin, "no margin at or below the winning average")
	assert.Equal(t, models.OutcomeTooClose, result.Outcome)
}

// TestServicePredictUnknownVenue tests that unknown venues propagate
// ErrVenueNotFound
func TestServicePredictUnknownVenue(t *testing.T) {
	svc, _ := testService(0.5, 0)

	_, err := svc.Predict(models.PredictionRequest{Venue: "NoSuchStadium", Score: 170})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrVenueNotFound)
}

// TestServicePredictInvalidScore tests score range validation
func TestServicePredictInvalidScore(t *testing.T) {
	svc, _ := testService(0.5, 0)

	for _, score := range []int{-10, 0, 99, 301, 1000} {
		_, err := svc.Predict(models.PredictionRequest{Venue: "Chennai", Score: score})
		require.Error(t, err, "score=%d", score)
		assert.ErrorIs(t, err, models.ErrInvalidScore)
	}
}

// TestServicePredictCached tests that repeated requests hit the cache
func TestServicePredictCached(t *testing.T) {
	svc, win := testService(0.55, 12.0)
	req := models.PredictionRequest{Venue: "Chennai", Score: 170}

	first, err := svc.Predict(req)
	require.NoError(t, err)
	second, err := svc.Predict(req)
	require.NoError(t, err)

	assert.Equal(t, 1, win.calls, "second request must be served from cache")
	assert.Equal(t, first.Probability, second.Probability)
	assert.Equal(t, first.ID, second.ID)
}

// TestServicePredictLabels tests display label defaulting
func TestServicePredictLabels(t *testing.T) {
	svc, _ := testService(0.55, 12.0)

	result, err := svc.Predict(models.PredictionRequest{Venue: "Chennai", Score: 170})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBattingLabel, result.BattingTeam)
	assert.Equal(t, models.DefaultBowlingLabel, result.BowlingTeam)

	result, err = svc.Predict(models.PredictionRequest{
		Venue: "Chennai", Score: 170, BattingTeam: "CSK", BowlingTeam: "MI",
	})
	require.NoError(t, err)
	assert.Equal(t, "CSK", result.BattingTeam)
	assert.Equal(t, "MI", result.BowlingTeam)
}
