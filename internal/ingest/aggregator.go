package ingest

import (
	"sort"

	"github.com/yourusername/pitch-oracle/internal/models"
)

// Toss recommendation labels published in the venue stats artifact.
const (
	RecommendBatFirst  = "Bat First"
	RecommendBowlFirst = "Bowl First"
)

// Aggregate folds a venue's match records into the VenueStats record the
// prediction service consumes. Records must all belong to the same venue.
func Aggregate(venue string, matches []*models.MatchRecord) (*models.VenueStats, error) {
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}

	var (
		firstInningsTotal  int
		secondInningsTotal int
		winningScoreTotal  int
		battingFirstWins   int
		highestChase       int
	)

	runsByPlayer := make(map[string]int)
	wicketsByPlayer := make(map[string]int)

	for _, m := range matches {
		firstInningsTotal += m.FirstInningsScore
		secondInningsTotal += m.SecondInningsScore

		if m.BattingFirstWon {
			battingFirstWins++
			winningScoreTotal += m.FirstInningsScore
		} else if m.SecondInningsScore > highestChase {
			highestChase = m.SecondInningsScore
		}

		for _, p := range m.Performances {
			runsByPlayer[p.Player] += p.Runs
			wicketsByPlayer[p.Player] += p.Wickets
		}
	}

	total := len(matches)

	// With no batting-first win on record the winning-score baseline falls
	// back to the venue's overall first-innings average.
	avgWinningScore := float64(firstInningsTotal) / float64(total)
	if battingFirstWins > 0 {
		avgWinningScore = float64(winningScoreTotal) / float64(battingFirstWins)
	}

	batFirstWinPct := 100 * float64(battingFirstWins) / float64(total)

	recommendation := RecommendBowlFirst
	if batFirstWinPct >= 50 {
		recommendation = RecommendBatFirst
	}

	VenuesAggregatedTotal.Inc()

	return &models.VenueStats{
		Venue:                  venue,
		AvgFirstInningsScore:   float64(firstInningsTotal) / float64(total),
		AvgSecondInningsScore:  float64(secondInningsTotal) / float64(total),
		AvgWinningScore:        avgWinningScore,
		HighestSuccessfulChase: highestChase,
		BatFirstWinPct:         batFirstWinPct,
		BowlFirstWinPct:        100 - batFirstWinPct,
		TossRecommendation:     recommendation,
		TopRunScorers:          rankRuns(runsByPlayer),
		TopWicketTakers:        rankWickets(wicketsByPlayer),
	}, nil
}

func rankRuns(totals map[string]int) []models.PlayerRuns {
	ranked := make([]models.PlayerRuns, 0, len(totals))
	for player, runs := range totals {
		if runs > 0 {
			ranked = append(ranked, models.PlayerRuns{Player: player, Runs: runs})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Runs != ranked[j].Runs {
			return ranked[i].Runs > ranked[j].Runs
		}
		return ranked[i].Player < ranked[j].Player
	})
	return ranked
}

func rankWickets(totals map[string]int) []models.PlayerWickets {
	ranked := make([]models.PlayerWickets, 0, len(totals))
	for player, wickets := range totals {
		if wickets > 0 {
			ranked = append(ranked, models.PlayerWickets{Player: player, Wickets: wickets})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Wickets != ranked[j].Wickets {
			return ranked[i].Wickets > ranked[j].Wickets
		}
		return ranked[i].Player < ranked[j].Player
	})
	return ranked
}
