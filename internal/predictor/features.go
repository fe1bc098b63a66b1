package predictor

import (
	"fmt"

	"github.com/yourusername/pitch-oracle/internal/models"
)

// Fixed context the models were trained under: a first-innings estimate for
// the current season, with the toss winner batting first.
const (
	featureSeasonYear = 2025

	// innings_momentum is normalized around a par T20 score of 120.
	momentumParScore = 120
)

// venueFeaturePrefix matches the one-hot venue columns in the model schema.
const venueFeaturePrefix = "city_"

// FeatureBuilder translates a (venue stats, score) pair into the exact
// ordered vector a model expects. The schema is captured from the model
// artifact at load time; features the schema declares but the builder does
// not set default to zero, and the venue indicator is set only when the
// schema actually contains a column for that venue. An unknown venue is a
// documented fallback (all-zero venue dimension), not an error.
type FeatureBuilder struct {
	schema []string
	index  map[string]int
}

// NewFeatureBuilder creates a builder for a model's ordered feature schema.
func NewFeatureBuilder(schema []string) *FeatureBuilder {
	index := make(map[string]int, len(schema))
	for i, name := range schema {
		index[name] = i
	}
	return &FeatureBuilder{schema: schema, index: index}
}

// Build constructs the feature vector for one prediction.
func (b *FeatureBuilder) Build(venueStats models.VenueStats, score int) []float64 {
	features := make([]float64, len(b.schema))

	b.set(features, "year", featureSeasonYear)
	b.set(features, "innings_1st", 1)
	b.set(features, "innings_2nd", 2)
	b.set(features, "innings_score_1st", float64(score))
	b.set(features, "innings_score_2nd", 0)
	b.set(features, "toss_winner_batted_first", 1)
	b.set(features, "score_vs_avg", float64(score)-venueStats.AvgFirstInningsScore)
	b.set(features, "score_vs_winning_avg", float64(score)-venueStats.AvgWinningScore)
	b.set(features, "score_percentile", 0.5)
	b.set(features, "innings_momentum", (float64(score)-momentumParScore)/momentumParScore)

	if float64(score) >= venueStats.AvgWinningScore {
		b.set(features, "is_high_score", 1)
	}

	// Venue one-hot, only when this venue was in the training set
	b.set(features, venueFeaturePrefix+venueStats.Venue, 1)

	return features
}

// set assigns a named feature if the schema declares it, silently skipping
// otherwise.
func (b *FeatureBuilder) set(features []float64, name string, value float64) {
	if i, ok := b.index[name]; ok {
		features[i] = value
	}
}

// HasVenue reports whether the schema carries an indicator column for the
// venue.
func (b *FeatureBuilder) HasVenue(venue string) bool {
	_, ok := b.index[fmt.Sprintf("%s%s", venueFeaturePrefix, venue)]
	return ok
}
