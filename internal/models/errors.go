package models

import "errors"

var (
	// ErrVenueNotFound indicates the requested venue is absent from the
	// statistics store. Propagated to the caller, never defaulted.
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInvalidScore indicates a score outside the accepted range
	ErrInvalidScore = errors.New("invalid score")
)
