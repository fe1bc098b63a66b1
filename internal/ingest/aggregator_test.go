package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pitch-oracle/internal/models"
)

func match(first, second int, battingFirstWon bool, perfs ...models.PlayerPerformance) *models.MatchRecord {
	return &models.MatchRecord{
		Venue:              "Chennai",
		FirstInningsScore:  first,
		SecondInningsScore: second,
		BattingFirstWon:    battingFirstWon,
		Performances:       perfs,
	}
}

func TestAggregate(t *testing.T) {
	matches := []*models.MatchRecord{
		match(180, 160, true,
			models.PlayerPerformance{Player: "MS Dhoni", Runs: 54, Wickets: 0},
			models.PlayerPerformance{Player: "RA Jadeja", Runs: 12, Wickets: 3},
		),
		match(150, 154, false,
			models.PlayerPerformance{Player: "MS Dhoni", Runs: 30, Wickets: 0},
			models.PlayerPerformance{Player: "DL Chahar", Runs: 0, Wickets: 2},
		),
		match(170, 145, true,
			models.PlayerPerformance{Player: "RA Jadeja", Runs: 41, Wickets: 1},
		),
		match(140, 141, false),
	}

	vs, err := Aggregate("Chennai", matches)
	require.NoError(t, err)

	assert.Equal(t, "Chennai", vs.Venue)
	assert.InDelta(t, 160.0, vs.AvgFirstInningsScore, 1e-9)
	assert.InDelta(t, 150.0, vs.AvgSecondInningsScore, 1e-9)

	// Winning average only counts scores that actually won batting first.
	assert.InDelta(t, 175.0, vs.AvgWinningScore, 1e-9)

	assert.Equal(t, 154, vs.HighestSuccessfulChase)
	assert.InDelta(t, 50.0, vs.BatFirstWinPct, 1e-9)
	assert.InDelta(t, 50.0, vs.BowlFirstWinPct, 1e-9)
	assert.Equal(t, RecommendBatFirst, vs.TossRecommendation)

	require.Len(t, vs.TopRunScorers, 2)
	assert.Equal(t, models.PlayerRuns{Player: "MS Dhoni", Runs: 84}, vs.TopRunScorers[0])
	assert.Equal(t, models.PlayerRuns{Player: "RA Jadeja", Runs: 53}, vs.TopRunScorers[1])

	require.Len(t, vs.TopWicketTakers, 2)
	assert.Equal(t, models.PlayerWickets{Player: "RA Jadeja", Wickets: 4}, vs.TopWicketTakers[0])
	assert.Equal(t, models.PlayerWickets{Player: "DL Chahar", Wickets: 2}, vs.TopWicketTakers[1])
}

func TestAggregateNoMatches(t *testing.T) {
	_, err := Aggregate("Chennai", nil)
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestAggregateNoBattingFirstWins(t *testing.T) {
	matches := []*models.MatchRecord{
		match(150, 151, false),
		match(160, 162, false),
	}

	vs, err := Aggregate("Chennai", matches)
	require.NoError(t, err)

	// No batting-first win on record: the baseline falls back to the
	// overall first-innings average.
	assert.InDelta(t, 155.0, vs.AvgWinningScore, 1e-9)
	assert.InDelta(t, 0.0, vs.BatFirstWinPct, 1e-9)
	assert.Equal(t, RecommendBowlFirst, vs.TossRecommendation)
	assert.Equal(t, 162, vs.HighestSuccessfulChase)
}

func TestAggregateRankingTiebreak(t *testing.T) {
	matches := []*models.MatchRecord{
		match(170, 150, true,
			models.PlayerPerformance{Player: "B Kumar", Runs: 40, Wickets: 2},
			models.PlayerPerformance{Player: "A Sharma", Runs: 40, Wickets: 2},
		),
	}

	vs, err := Aggregate("Chennai", matches)
	require.NoError(t, err)

	// Equal totals order alphabetically so the ranking is deterministic.
	require.Len(t, vs.TopRunScorers, 2)
	assert.Equal(t, "A Sharma", vs.TopRunScorers[0].Player)
	assert.Equal(t, "B Kumar", vs.TopRunScorers[1].Player)
}

func TestAggregateSkipsZeroContributions(t *testing.T) {
	matches := []*models.MatchRecord{
		match(170, 150, true,
			models.PlayerPerformance{Player: "Batter", Runs: 60, Wickets: 0},
			models.PlayerPerformance{Player: "Bowler", Runs: 0, Wickets: 3},
		),
	}

	vs, err := Aggregate("Chennai", matches)
	require.NoError(t, err)

	require.Len(t, vs.TopRunScorers, 1)
	assert.Equal(t, "Batter", vs.TopRunScorers[0].Player)
	require.Len(t, vs.TopWicketTakers, 1)
	assert.Equal(t, "Bowler", vs.TopWicketTakers[0].Player)
}
