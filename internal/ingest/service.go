package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitch-oracle/internal/models"
	"github.com/yourusername/pitch-oracle/internal/repository"
)

// RunMetrics summarizes one ingestion run.
type RunMetrics struct {
	Seasons          int
	MatchesIngested  int
	VenuesAggregated int
	Duration         time.Duration
}

// String renders the run summary for logs.
func (m RunMetrics) String() string {
	return fmt.Sprintf("seasons=%d matches=%d venues=%d duration=%s",
		m.Seasons, m.MatchesIngested, m.VenuesAggregated, m.Duration)
}

// Service orchestrates one ingestion run: fetch raw results, persist them,
// recompute per-venue aggregates, and export the artifact the prediction
// service loads at start.
type Service struct {
	source    MatchSource
	matchRepo repository.MatchRepository
	statsRepo repository.VenueStatsRepository
	logger    *logrus.Logger
}

// NewService creates an ingestion service.
func NewService(source MatchSource, matchRepo repository.MatchRepository, statsRepo repository.VenueStatsRepository, logger *logrus.Logger) *Service {
	return &Service{
		source:    source,
		matchRepo: matchRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Run ingests the given seasons and recomputes every venue's aggregates.
func (s *Service) Run(ctx context.Context, seasons []int) (*RunMetrics, error) {
	start := time.Now()
	defer func() {
		IngestionRunDuration.Observe(time.Since(start).Seconds())
	}()

	metrics := &RunMetrics{Seasons: len(seasons)}

	for _, season := range seasons {
		matches, err := s.source.FetchSeason(ctx, season)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch season %d: %w", season, err)
		}

		for _, match := range matches {
			if err := s.matchRepo.Upsert(ctx, match); err != nil {
				return nil, fmt.Errorf("failed to store match %s: %w", match.ID, err)
			}
		}

		metrics.MatchesIngested += len(matches)
		s.logger.WithFields(logrus.Fields{
			"season":  season,
			"matches": len(matches),
		}).Info("Season ingested")
	}

	venues, err := s.matchRepo.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	for _, venue := range venues {
		matches, err := s.matchRepo.ListByVenue(ctx, venue)
		if err != nil {
			return nil, fmt.Errorf("failed to load matches for %s: %w", venue, err)
		}

		venueStats, err := Aggregate(venue, matches)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate %s: %w", venue, err)
		}

		if err := s.statsRepo.Upsert(ctx, venueStats); err != nil {
			return nil, fmt.Errorf("failed to store aggregates for %s: %w", venue, err)
		}

		metrics.VenuesAggregated++
	}

	metrics.Duration = time.Since(start)
	return metrics, nil
}

// Export writes the venue stats artifact consumed by the prediction service.
func (s *Service) Export(ctx context.Context, path string) error {
	all, err := s.statsRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load venue stats: %w", err)
	}
	if len(all) == 0 {
		return fmt.Errorf("%w: nothing to export", ErrNoMatches)
	}

	// The artifact is keyed by venue name; the embedded copy is redundant.
	export := make(map[string]models.VenueStats, len(all))
	for venue, vs := range all {
		vs.Venue = ""
		export[venue] = vs
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal venue stats: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace artifact: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"path":   path,
		"venues": len(export),
	}).Info("Venue stats artifact exported")

	return nil
}
