package stats

import (
	"math"

	"github.com/yourusername/pitch-oracle/internal/models"
)

// Ranked player lists are unbounded in the artifact but only the top five are
// ever presented.
const topPlayers = 5

// The toss summary is expressed as wins out of a small representative match
// count rather than raw percentages.
const tossSampleMatches = 8

// TossSummary expresses the venue's toss-decision record as win counts.
type TossSummary struct {
	BatFirstWins   int    `json:"bat_first_wins"`
	BowlFirstWins  int    `json:"bowl_first_wins"`
	TotalMatches   int    `json:"total_matches"`
	Recommendation string `json:"recommendation"`
}

// VenueAnalytics is the pre-match ("yet to bat") view of a venue: scoring
// baselines, toss record, and top performers.
type VenueAnalytics struct {
	Venue                  string                 `json:"venue"`
	AvgFirstInningsScore   int                    `json:"avg_first_innings_score"`
	AvgSecondInningsScore  int                    `json:"avg_second_innings_score"`
	AvgWinningScore        int                    `json:"avg_winning_score"`
	HighestSuccessfulChase int                    `json:"highest_successful_chase"`
	Toss                   TossSummary            `json:"toss"`
	TopRunScorers          []models.PlayerRuns    `json:"top_run_scorers"`
	TopWicketTakers        []models.PlayerWickets `json:"top_wicket_takers"`
}

// Analytics builds the pre-match analytics view for a venue.
func (s *Store) Analytics(venue string) (*VenueAnalytics, error) {
	vs, err := s.Lookup(venue)
	if err != nil {
		return nil, err
	}

	batFirstWins := int(math.Round(tossSampleMatches * vs.BatFirstWinPct / 100))

	return &VenueAnalytics{
		Venue:                  vs.Venue,
		AvgFirstInningsScore:   int(math.Round(vs.AvgFirstInningsScore)),
		AvgSecondInningsScore:  int(math.Round(vs.AvgSecondInningsScore)),
		AvgWinningScore:        int(math.Round(vs.AvgWinningScore)),
		HighestSuccessfulChase: vs.HighestSuccessfulChase,
		Toss: TossSummary{
			BatFirstWins:   batFirstWins,
			BowlFirstWins:  tossSampleMatches - batFirstWins,
			TotalMatches:   tossSampleMatches,
			Recommendation: vs.TossRecommendation,
		},
		TopRunScorers:   vs.TopRunScorersN(topPlayers),
		TopWicketTakers: vs.TopWicketTakersN(topPlayers),
	}, nil
}
