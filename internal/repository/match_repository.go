package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yourusername/pitch-oracle/internal/database"
	"github.com/yourusername/pitch-oracle/internal/models"
)

const errScanMatch = "failed to scan match: %w"

// PostgresMatchRepository implements MatchRepository for PostgreSQL
type PostgresMatchRepository struct {
	db *database.DB
}

// NewPostgresMatchRepository creates a new match repository
func NewPostgresMatchRepository(db *database.DB) MatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Upsert inserts or replaces a match record
func (r *PostgresMatchRepository) Upsert(ctx context.Context, match *models.MatchRecord) error {
	performances, err := json.Marshal(match.Performances)
	if err != nil {
		return fmt.Errorf("failed to marshal performances: %w", err)
	}

	query := `
		INSERT INTO matches (id, venue, season, played_at, first_innings_score,
			second_innings_score, batting_first_won, toss_winner_batted_first, performances)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			venue = EXCLUDED.venue,
			season = EXCLUDED.season,
			played_at = EXCLUDED.played_at,
			first_innings_score = EXCLUDED.first_innings_score,
			second_innings_score = EXCLUDED.second_innings_score,
			batting_first_won = EXCLUDED.batting_first_won,
			toss_winner_batted_first = EXCLUDED.toss_winner_batted_first,
			performances = EXCLUDED.performances
	`

	_, err = r.db.GetPool().Exec(ctx, query,
		match.ID, match.Venue, match.Season, match.PlayedAt, match.FirstInningsScore,
		match.SecondInningsScore, match.BattingFirstWon, match.TossWinnerBattedFirst, performances,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}

	return nil
}

// ListByVenue returns all match records for a venue
func (r *PostgresMatchRepository) ListByVenue(ctx context.Context, venue string) ([]*models.MatchRecord, error) {
	query := `
		SELECT id, venue, season, played_at, first_innings_score,
			second_innings_score, batting_first_won, toss_winner_batted_first, performances
		FROM matches
		WHERE venue = $1
		ORDER BY played_at
	`

	rows, err := r.db.GetPool().Query(ctx, query, venue)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.MatchRecord, 0)
	for rows.Next() {
		var m models.MatchRecord
		var performances []byte

		if err := rows.Scan(&m.ID, &m.Venue, &m.Season, &m.PlayedAt, &m.FirstInningsScore,
			&m.SecondInningsScore, &m.BattingFirstWon, &m.TossWinnerBattedFirst, &performances); err != nil {
			return nil, fmt.Errorf(errScanMatch, err)
		}

		if len(performances) > 0 {
			if err := json.Unmarshal(performances, &m.Performances); err != nil {
				return nil, fmt.Errorf("failed to unmarshal performances: %w", err)
			}
		}

		matches = append(matches, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return matches, nil
}

// ListVenues returns the distinct venues with stored matches
func (r *PostgresMatchRepository) ListVenues(ctx context.Context) ([]string, error) {
	rows, err := r.db.GetPool().Query(ctx, `SELECT DISTINCT venue FROM matches ORDER BY venue`)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer rows.Close()

	venues := make([]string, 0)
	for rows.Next() {
		var venue string
		if err := rows.Scan(&venue); err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate venues: %w", err)
	}

	return venues, nil
}
