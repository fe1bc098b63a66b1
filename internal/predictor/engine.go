// Package predictor combines venue history and raw model outputs into final
// match-outcome estimates.
package predictor

import (
	"math"

	"github.com/yourusername/pitch-oracle/internal/models"
)

// Outcome kinds reexported for callers that classify without predicting.
const (
	OutcomeBattingWin = models.OutcomeBattingWin
	OutcomeBowlingWin = models.OutcomeBowlingWin
	OutcomeTooClose   = models.OutcomeTooClose
)

// Outcome is the classified result of a prediction. Margin is set only for
// batting-side wins.
type Outcome struct {
	Kind   models.Outcome
	Margin *int
}

// Blending hyperparameters, carried over from the training pipeline's
// calibration. Changing any of them changes every published estimate.
const (
	// logisticSteepness controls how fast confidence grows per run above the
	// venue's historical winning average.
	logisticSteepness = 0.12

	// The heuristic alone never claims below 30% or above 97%: even a very
	// low first-innings score retains some winning chance, and vice versa.
	heuristicFloor   = 0.30
	heuristicCeiling = 0.97

	// The heuristic dominates the blend; the model, trained on a small
	// multi-season sample, is a secondary signal.
	heuristicWeight = 0.65
	modelWeight     = 0.35

	// Hard output bounds: the engine never reports certainty.
	probabilityFloor   = 0.03
	probabilityCeiling = 0.97

	// Each run above the historical winning average translates to 0.6 runs
	// of expected winning margin.
	marginRunsPerDiff = 0.6

	marginHeuristicWeight = 0.7
	marginModelWeight     = 0.3

	// Minimum reportable margin in runs.
	marginMinimum = 1
)

// BlendProbability anchors the raw model probability to a bounded, monotonic
// function of how far the score sits above the venue's historical winning
// average. The result is always within [0.03, 0.97].
func BlendProbability(score int, avgWinningScore float64, rawProbability float64) float64 {
	diff := float64(score) - avgWinningScore
	logistic := 1.0 / (1.0 + math.Exp(-logisticSteepness*diff))
	heuristic := heuristicFloor + logistic*(heuristicCeiling-heuristicFloor)
	final := heuristicWeight*heuristic + modelWeight*rawProbability
	return clamp(final, probabilityFloor, probabilityCeiling)
}

// BlendMargin produces the expected batting-side winning margin in runs, or
// nil when the score is at or below the venue's historical winning average.
// A score at the baseline exactly routes to nil: the match is treated as too
// close rather than asserting a losing margin, whatever the model says.
func BlendMargin(score int, avgWinningScore float64, rawMargin float64) *int {
	diff := float64(score) - avgWinningScore
	if diff <= 0 {
		return nil
	}
	base := diff * marginRunsPerDiff
	margin := int(math.Round(marginHeuristicWeight*base + marginModelWeight*rawMargin))
	if margin < marginMinimum {
		margin = marginMinimum
	}
	return &margin
}

// Classify maps a blended probability and margin to the user-visible
// trichotomy. A margin is only ever attributed to the batting side, and only
// when the batting side is actually favored.
func Classify(probability float64, margin *int) Outcome {
	switch {
	case margin != nil && probability > 0.5:
		return Outcome{Kind: OutcomeBattingWin, Margin: margin}
	case margin != nil:
		return Outcome{Kind: OutcomeBowlingWin}
	default:
		return Outcome{Kind: OutcomeTooClose}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
