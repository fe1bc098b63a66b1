package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitch-oracle/internal/models"
)

func testVenueStats() models.VenueStats {
	return models.VenueStats{
		Venue:                "Chennai",
		AvgFirstInningsScore: 168.5,
		AvgWinningScore:      175.0,
	}
}

// TestFeatureBuilderBuild tests named feature construction
func TestFeatureBuilderBuild(t *testing.T) {
	schema := []string{
		"year", "innings_1st", "innings_score_1st", "score_vs_avg",
		"score_vs_winning_avg", "is_high_score", "innings_momentum",
		"toss_winner_batted_first", "city_Chennai", "city_Mumbai",
	}
	b := NewFeatureBuilder(schema)

	features := b.Build(testVenueStats(), 180)
	require.Len(t, features, len(schema))

	assert.Equal(t, 2025.0, features[0])
	assert.Equal(t, 1.0, features[1])
	assert.Equal(t, 180.0, features[2])
	assert.InDelta(t, 180-168.5, features[3], 1e-9)
	assert.InDelta(t, 180-175.0, features[4], 1e-9)
	assert.Equal(t, 1.0, features[5], "180 >= 175 is a high score")
	assert.InDelta(t, (180.0-120)/120, features[6], 1e-9)
	assert.Equal(t, 1.0, features[7])
	assert.Equal(t, 1.0, features[8], "venue indicator set for Chennai")
	assert.Equal(t, 0.0, features[9], "other venue indicators stay zero")
}

// TestFeatureBuilderLowScore tests the high-score indicator below the baseline
func TestFeatureBuilderLowScore(t *testing.T) {
	b := NewFeatureBuilder([]string{"is_high_score", "innings_score_1st"})

	features := b.Build(testVenueStats(), 150)
	assert.Equal(t, 0.0, features[0])
	assert.Equal(t, 150.0, features[1])
}

// TestFeatureBuilderUnknownVenue tests the documented all-zero fallback for
// venues absent from the model schema
func TestFeatureBuilderUnknownVenue(t *testing.T) {
	b := NewFeatureBuilder([]string{"innings_score_1st", "city_Mumbai"})

	vs := testVenueStats()
	vs.Venue = "Dharamsala"

	features := b.Build(vs, 170)
	assert.Equal(t, 170.0, features[0])
	assert.Equal(t, 0.0, features[1], "unknown venue leaves all indicators zero")
	assert.False(t, b.HasVenue("Dharamsala"))
	assert.True(t, b.HasVenue("Mumbai"))
}

// TestFeatureBuilderZeroDefaults tests that schema features the builder does
// not set default to zero
func TestFeatureBuilderZeroDefaults(t *testing.T) {
	b := NewFeatureBuilder([]string{"some_training_only_feature", "innings_score_1st"})

	features := b.Build(testVenueStats(), 170)
	assert.Equal(t, 0.0, features[0])
	assert.Equal(t, 170.0, features[1])
}
