// Package ingest fetches completed match records and folds them into
// per-venue aggregates.
package ingest

import "errors"

var (
	// ErrSourceUnavailable indicates the upstream results API is unreachable
	ErrSourceUnavailable = errors.New("match data source unavailable")

	// ErrInvalidSourceData indicates the upstream payload failed to parse
	ErrInvalidSourceData = errors.New("invalid match data")

	// ErrNoMatches indicates aggregation was attempted with no match records
	ErrNoMatches = errors.New("no match records to aggregate")
)
