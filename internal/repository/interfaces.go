// Package repository provides persistence for raw match records and computed
// venue aggregates.
package repository

import (
	"context"

	"github.com/yourusername/pitch-oracle/internal/models"
)

// MatchRepository stores completed match records fetched by the ingestion
// pipeline.
type MatchRepository interface {
	Upsert(ctx context.Context, match *models.MatchRecord) error
	ListByVenue(ctx context.Context, venue string) ([]*models.MatchRecord, error)
	ListVenues(ctx context.Context) ([]string, error)
}

// VenueStatsRepository stores the computed per-venue aggregates.
type VenueStatsRepository interface {
	Upsert(ctx context.Context, venueStats *models.VenueStats) error
	GetAll(ctx context.Context) (map[string]models.VenueStats, error)
}
