package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yourusername/pitch-oracle/internal/database"
	"github.com/yourusername/pitch-oracle/internal/models"
)

// PostgresVenueStatsRepository implements VenueStatsRepository for PostgreSQL
type PostgresVenueStatsRepository struct {
	db *database.DB
}

// NewPostgresVenueStatsRepository creates a new venue stats repository
func NewPostgresVenueStatsRepository(db *database.DB) VenueStatsRepository {
	return &PostgresVenueStatsRepository{db: db}
}

// Upsert inserts or replaces the aggregates for a venue
func (r *PostgresVenueStatsRepository) Upsert(ctx context.Context, venueStats *models.VenueStats) error {
	runScorers, err := json.Marshal(venueStats.TopRunScorers)
	if err != nil {
		return fmt.Errorf("failed to marshal run scorers: %w", err)
	}
	wicketTakers, err := json.Marshal(venueStats.TopWicketTakers)
	if err != nil {
		return fmt.Errorf("failed to marshal wicket takers: %w", err)
	}

	query := `
		INSERT INTO venue_stats (venue, avg_first_innings_score, avg_second_innings_score,
			avg_winning_score, highest_successful_chase, bat_first_win_pct,
			bowl_first_win_pct, toss_recommendation, top_run_scorers, top_wicket_takers,
			updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (venue) DO UPDATE SET
			avg_first_innings_score = EXCLUDED.avg_first_innings_score,
			avg_second_innings_score = EXCLUDED.avg_second_innings_score,
			avg_winning_score = EXCLUDED.avg_winning_score,
			highest_successful_chase = EXCLUDED.highest_successful_chase,
			bat_first_win_pct = EXCLUDED.bat_first_win_pct,
			bowl_first_win_pct = EXCLUDED.bowl_first_win_pct,
			toss_recommendation = EXCLUDED.toss_recommendation,
			top_run_scorers = EXCLUDED.top_run_scorers,
			top_wicket_takers = EXCLUDED.top_wicket_takers,
			updated_at = NOW()
	`

	_, err = r.db.GetPool().Exec(ctx, query,
		venueStats.Venue, venueStats.AvgFirstInningsScore, venueStats.AvgSecondInningsScore,
		venueStats.AvgWinningScore, venueStats.HighestSuccessfulChase, venueStats.BatFirstWinPct,
		venueStats.BowlFirstWinPct, venueStats.TossRecommendation, runScorers, wicketTakers,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert venue stats: %w", err)
	}

	return nil
}

// GetAll returns the aggregates for every venue, keyed by venue name
func (r *PostgresVenueStatsRepository) GetAll(ctx context.Context) (map[string]models.VenueStats, error) {
	query := `
		SELECT venue, avg_first_innings_score, avg_second_innings_score,
			avg_winning_score, highest_successful_chase, bat_first_win_pct,
			bowl_first_win_pct, toss_recommendation, top_run_scorers, top_wicket_takers
		FROM venue_stats
		ORDER BY venue
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query venue stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]models.VenueStats)
	for rows.Next() {
		var vs models.VenueStats
		var runScorers, wicketTakers []byte

		if err := rows.Scan(&vs.Venue, &vs.AvgFirstInningsScore, &vs.AvgSecondInningsScore,
			&vs.AvgWinningScore, &vs.HighestSuccessfulChase, &vs.BatFirstWinPct,
			&vs.BowlFirstWinPct, &vs.TossRecommendation, &runScorers, &wicketTakers); err != nil {
			return nil, fmt.Errorf("failed to scan venue stats: %w", err)
		}

		if len(runScorers) > 0 {
			if err := json.Unmarshal(runScorers, &vs.TopRunScorers); err != nil {
				return nil, fmt.Errorf("failed to unmarshal run scorers: %w", err)
			}
		}
		if len(wicketTakers) > 0 {
			if err := json.Unmarshal(wicketTakers, &vs.TopWicketTakers); err != nil {
				return nil, fmt.Errorf("failed to unmarshal wicket takers: %w", err)
			}
		}

		all[vs.Venue] = vs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate venue stats: %w", err)
	}

	return all, nil
}
