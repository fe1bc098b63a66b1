package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerPerformance is one player's contribution in a single match.
type PlayerPerformance struct {
	Player  string `json:"player"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

// MatchRecord is a completed T20 match as returned by the upstream data
// source. Raw records are persisted by the ingestion pipeline and folded into
// per-venue aggregates; the prediction path never sees them.
type MatchRecord struct {
	ID                 uuid.UUID           `json:"id"`
	Venue              string              `json:"venue"`
	Season             int                 `json:"season"`
	PlayedAt           time.Time           `json:"played_at"`
	FirstInningsScore  int                 `json:"first_innings_score"`
	SecondInningsScore int                 `json:"second_innings_score"`
	BattingFirstWon    bool                `json:"batting_first_won"`
	TossWinnerBattedFirst bool             `json:"toss_winner_batted_first"`
	Performances       []PlayerPerformance `json:"performances,omitempty"`
}

// ChaseSuccessful reports whether the chasing side won the match.
func (m *MatchRecord) ChaseSuccessful() bool {
	return !m.BattingFirstWon
}
