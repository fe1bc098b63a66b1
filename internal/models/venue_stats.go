// Package models defines the core domain types shared across the application.
package models

// PlayerRuns is one entry in a venue's run-scorer ranking.
type PlayerRuns struct {
	Player string `json:"player"`
	Runs   int    `json:"runs"`
}

// PlayerWickets is one entry in a venue's wicket-taker ranking.
type PlayerWickets struct {
	Player  string `json:"player"`
	Wickets int    `json:"wickets"`
}

// VenueStats holds the pre-computed historical aggregates for a single venue.
// Records are immutable once loaded; the prediction path only reads them.
type VenueStats struct {
	Venue                  string          `json:"venue,omitempty"`
	AvgFirstInningsScore   float64         `json:"avg_score"`
	AvgSecondInningsScore  float64         `json:"avg_second_score"`
	AvgWinningScore        float64         `json:"avg_winning_score"`
	HighestSuccessfulChase int             `json:"highest_chase"`
	BatFirstWinPct         float64         `json:"bat_first_win_pct"`
	BowlFirstWinPct        float64         `json:"bowl_first_win_pct"`
	TossRecommendation     string          `json:"toss_recommendation"`
	TopRunScorers          []PlayerRuns    `json:"top_run_scorers"`
	TopWicketTakers        []PlayerWickets `json:"top_wicket_takers"`
}

// TopRunScorersN returns the first n entries of the run-scorer ranking.
func (v *VenueStats) TopRunScorersN(n int) []PlayerRuns {
	if n > len(v.TopRunScorers) {
		n = len(v.TopRunScorers)
	}
	return v.TopRunScorers[:n]
}

// TopWicketTakersN returns the first n entries of the wicket-taker ranking.
func (v *VenueStats) TopWicketTakersN(n int) []PlayerWickets {
	if n > len(v.TopWicketTakers) {
		n = len(v.TopWicketTakers)
	}
	return v.TopWicketTakers[:n]
}
