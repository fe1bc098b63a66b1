// Package main provides the entry point for the stats ingestion pipeline.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/pitch-oracle/internal/config"
	"github.com/yourusername/pitch-oracle/internal/database"
	"github.com/yourusername/pitch-oracle/internal/health"
	"github.com/yourusername/pitch-oracle/internal/ingest"
	"github.com/yourusername/pitch-oracle/internal/logger"
	"github.com/yourusername/pitch-oracle/internal/repository"
	"github.com/yourusername/pitch-oracle/internal/scheduler"
)

var (
	configFile string
	daemon     bool
	exportPath string

	appLog    *logrus.Logger
	cfg       *config.Config
	db        *database.DB
	ingestSvc *ingest.Service
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().BoolVar(&daemon, "daemon", false, "Run on the configured cron schedule instead of once")
	rootCmd.Flags().StringVar(&exportPath, "export", "", "Artifact path to export after ingesting (defaults to artifacts.venue_stats_path)")
}

var rootCmd = &cobra.Command{
	Use:   "stats-ingest",
	Short: "Fetch match results and rebuild venue statistics",
	Long:  `Fetches completed match records from the upstream results API, recomputes per-venue aggregates, and exports the venue statistics artifact consumed by the prediction API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportPath == "" {
			exportPath = cfg.Artifacts.VenueStatsPath
		}
		if daemon {
			return runDaemon()
		}
		return runOnce()
	},
}

func main() {
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

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

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Ingestion.SourceURL == "" {
		return fmt.Errorf("ingestion.source_url must be configured")
	}
	if len(cfg.Ingestion.Seasons) == 0 {
		return fmt.Errorf("ingestion.seasons must be configured")
	}

	appLog = logger.NewLogger(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	appLog.Info("Database connection established")

	httpCfg := ingest.DefaultHTTPClientConfig()
	httpCfg.RateLimit = cfg.Ingestion.RateLimit
	httpCfg.Timeout = time.Duration(cfg.Ingestion.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.Ingestion.MaxRetries
	client := ingest.NewRateLimitedHTTPClient(httpCfg, appLog)

	source := ingest.NewHTTPMatchSource(&cfg.Ingestion, client, appLog)
	matchRepo := repository.NewPostgresMatchRepository(db)
	statsRepo := repository.NewPostgresVenueStatsRepository(db)

	ingestSvc = ingest.NewService(source, matchRepo, statsRepo, appLog)
	return nil
}

func runOnce() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	metrics, err := ingestSvc.Run(ctx, cfg.Ingestion.Seasons)
	if err != nil {
		return err
	}
	appLog.WithField("summary", metrics.String()).Info("Ingestion run completed")

	return ingestSvc.Export(ctx, exportPath)
}

func runDaemon() error {
	if cfg.Ingestion.Schedule == "" {
		return fmt.Errorf("ingestion.schedule must be configured in daemon mode")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthServer := health.NewServer("stats-ingest", cfg.Ingestion.HealthPort, db, appLog)
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}

	sched := scheduler.NewScheduler(ingestSvc, appLog)
	if err := sched.ScheduleIngestion(cfg.Ingestion.Schedule, cfg.Ingestion.Seasons, exportPath); err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	healthServer.SetReady(true)

	appLog.WithFields(logrus.Fields{
		"schedule": cfg.Ingestion.Schedule,
		"next_run": sched.NextRun(),
	}).Info("Ingestion daemon started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	appLog.WithField("signal", sig.String()).Info("Shutdown signal received")
	return sched.Stop()
}
