// Package predictor combines venue history and raw model outputs into final
// match-outcome estimates.
package predictor

import "errors"

var (
	// ErrModelEvaluation indicates an underlying model failed to evaluate
	ErrModelEvaluation = errors.New("model evaluation failed")

	// ErrScoreOutOfRange indicates a score outside the configured sane range
	ErrScoreOutOfRange = errors.New("score out of range")
)
