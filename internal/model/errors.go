// Package model loads and evaluates the externally-trained outcome models.
package model

import "errors"

var (
	// ErrArtifactMissing indicates a model artifact file could not be read
	ErrArtifactMissing = errors.New("model artifact missing")

	// ErrArtifactMalformed indicates a model artifact failed to parse or validate
	ErrArtifactMalformed = errors.New("model artifact malformed")

	// ErrModelTypeMismatch indicates an artifact of the wrong model type was supplied
	ErrModelTypeMismatch = errors.New("model type mismatch")

	// ErrFeatureDimension indicates a feature vector of the wrong length
	ErrFeatureDimension = errors.New("feature vector dimension mismatch")
)
