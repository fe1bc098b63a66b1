// Package main provides a CLI for one-shot predictions and venue analytics.
package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/pitch-oracle/internal/config"
	"github.com/yourusername/pitch-oracle/internal/logger"
	"github.com/yourusername/pitch-oracle/internal/model"
	"github.com/yourusername/pitch-oracle/internal/models"
	"github.com/yourusername/pitch-oracle/internal/predictor"
	"github.com/yourusername/pitch-oracle/internal/stats"
)

var (
	configFile  string
	battingTeam string
	bowlingTeam string

	appLog     *logrus.Logger
	cfg        *config.Config
	venueStore *stats.Store
	svc        *predictor.Service
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	predictCmd.Flags().StringVar(&battingTeam, "batting", "", "Batting team display name")
	predictCmd.Flags().StringVar(&bowlingTeam, "bowling", "", "Bowling team display name")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(venueCmd)
	rootCmd.AddCommand(venuesCmd)
}

var rootCmd = &cobra.Command{
	Use:   "predict",
	Short: "T20 match-outcome estimates from the terminal",
	Long:  `Computes win probability and expected margin for a first-innings score, or shows a venue's pre-match analytics.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

var predictCmd = &cobra.Command{
	Use:   "outcome <venue> <score>",
	Short: "Predict the outcome for a first-innings score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("score must be an integer: %w", err)
		}

		req := models.PredictionRequest{
			Venue:       args[0],
			Score:       score,
			BattingTeam: battingTeam,
			BowlingTeam: bowlingTeam,
		}

		result, err := svc.Predict(req)
		if err != nil {
			return err
		}

		printResult(result)
		return nil
	},
}

var venueCmd = &cobra.Command{
	Use:   "venue <venue>",
	Short: "Show pre-match analytics for a venue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analytics, err := venueStore.Analytics(args[0])
		if err != nil {
			return err
		}

		printAnalytics(analytics)
		return nil
	},
}

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "List known venues",
	Run: func(cmd *cobra.Command, args []string) {
		for _, venue := range venueStore.Venues() {
			fmt.Println(venue)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func setup() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog = logger.NewLogger("warn")

	winModel, err := model.LoadWinProbabilityModel(cfg.Artifacts.WinModelPath)
	if err != nil {
		return err
	}
	marginModel, err := model.LoadMarginModel(cfg.Artifacts.MarginModelPath)
	if err != nil {
		return err
	}
	venueStore, err = stats.Load(cfg.Artifacts.VenueStatsPath)
	if err != nil {
		return err
	}

	svc = predictor.NewService(&cfg.Predictor, venueStore, winModel, marginModel, appLog)
	return nil
}

func printResult(result *models.PredictionResult) {
	fmt.Printf("Venue:            %s\n", result.Venue)
	fmt.Printf("First innings:    %d\n", result.Score)
	fmt.Printf("Win probability:  %.1f%% (%s)\n", result.Probability*100, result.BattingTeam)

	switch result.Outcome {
	case models.OutcomeBattingWin:
		fmt.Printf("Prediction:       %s expected to win by %d runs\n", result.BattingTeam, *result.Margin)
	case models.OutcomeBowlingWin:
		fmt.Printf("Prediction:       %s expected to win\n", result.BowlingTeam)
	default:
		fmt.Println("Prediction:       Very close match expected")
	}
}

func printAnalytics(a *stats.VenueAnalytics) {
	fmt.Printf("%s\n", a.Venue)
	fmt.Printf("  Avg 1st innings:    %d\n", a.AvgFirstInningsScore)
	fmt.Printf("  Avg 2nd innings:    %d\n", a.AvgSecondInningsScore)
	fmt.Printf("  Avg winning 1st:    %d\n", a.AvgWinningScore)
	fmt.Printf("  Highest chase:      %d\n", a.HighestSuccessfulChase)
	fmt.Printf("  Toss:               bat first %d/%d, bowl first %d/%d\n",
		a.Toss.BatFirstWins, a.Toss.TotalMatches, a.Toss.BowlFirstWins, a.Toss.TotalMatches)
	fmt.Printf("  Recommendation:     %s\n", a.Toss.Recommendation)

	fmt.Println("  Top run scorers:")
	for i, p := range a.TopRunScorers {
		fmt.Printf("    #%d %s (%d runs)\n", i+1, p.Player, p.Runs)
	}
	fmt.Println("  Top wicket takers:")
	for i, p := range a.TopWicketTakers {
		fmt.Printf("    #%d %s (%d wickets)\n", i+1, p.Player, p.Wickets)
	}
}
