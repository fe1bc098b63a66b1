package models

import (
	"time"

	"github.com/google/uuid"
)

// Fallback display labels used when the caller leaves the team names blank.
// Presentation only, never part of the computed contract.
const (
	DefaultBattingLabel = "BATTING TEAM"
	DefaultBowlingLabel = "BOWLING TEAM"
)

// Outcome classifies a prediction for user-visible framing.
type Outcome string

const (
	// OutcomeBattingWin means the batting side is favored and a margin is predicted.
	OutcomeBattingWin Outcome = "batting_win"
	// OutcomeBowlingWin means the bowling side is favored; no margin is shown
	// because the margin heuristic models batting-side victories only.
	OutcomeBowlingWin Outcome = "bowling_win"
	// OutcomeTooClose means no clear favorite; no winner is asserted.
	OutcomeTooClose Outcome = "too_close"
)

// PredictionRequest is a single prediction invocation. Team labels are
// optional and presentational.
type PredictionRequest struct {
	Venue       string `json:"venue"`
	Score       int    `json:"score"`
	BattingTeam string `json:"batting_team,omitempty"`
	BowlingTeam string `json:"bowling_team,omitempty"`
}

// BattingLabel returns the batting-side display label, falling back to the
// default when blank.
func (r *PredictionRequest) BattingLabel() string {
	if r.BattingTeam == "" {
		return DefaultBattingLabel
	}
	return r.BattingTeam
}

// BowlingLabel returns the bowling-side display label, falling back to the
// default when blank.
func (r *PredictionRequest) BowlingLabel() string {
	if r.BowlingTeam == "" {
		return DefaultBowlingLabel
	}
	return r.BowlingTeam
}

// PredictionResult is the final, user-facing estimate for one request.
// Probability is always within [0.03, 0.97]. Margin is nil when the match is
// too close to assert a batting-side winning margin.
type PredictionResult struct {
	ID           uuid.UUID `json:"id"`
	Venue        string    `json:"venue"`
	Score        int       `json:"score"`
	Probability  float64   `json:"probability"`
	Margin       *int      `json:"margin,omitempty"`
	Outcome      Outcome   `json:"outcome"`
	BattingTeam  string    `json:"batting_team"`
	BowlingTeam  string    `json:"bowling_team"`
	ModelVersion string    `json:"model_version"`
	PredictedAt  time.Time `json:"predicted_at"`
}
