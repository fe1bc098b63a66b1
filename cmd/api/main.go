// Package main provides the entry point for the prediction API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitch-oracle/internal/config"
	"github.com/yourusername/pitch-oracle/internal/logger"
	"github.com/yourusername/pitch-oracle/internal/metrics"
	"github.com/yourusername/pitch-oracle/internal/model"
	"github.com/yourusername/pitch-oracle/internal/predictor"
	"github.com/yourusername/pitch-oracle/internal/server"
	"github.com/yourusername/pitch-oracle/internal/stats"
)

func main() {
	cfg, err := config.LoadWithDefaults(os.Getenv("PITCH_ORACLE_CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Pitch Oracle API starting")

	// All three artifacts must load before any request is served; there is
	// no degraded mode without them.
	winModel, err := model.LoadWinProbabilityModel(cfg.Artifacts.WinModelPath)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to load win probability model")
	}
	marginModel, err := model.LoadMarginModel(cfg.Artifacts.MarginModelPath)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to load margin model")
	}
	venueStore, err := stats.Load(cfg.Artifacts.VenueStatsPath)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to load venue statistics")
	}

	appLog.WithFields(logrus.Fields{
		"model_version": winModel.Version(),
		"venues":        venueStore.Len(),
	}).Info("Artifacts loaded")

	svc := predictor.NewService(&cfg.Predictor, venueStore, winModel, marginModel, appLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := server.NewHub(appLog)
	go hub.Run(ctx)

	if cfg.Metrics.Enabled {
		metrics.NewServer(&cfg.Metrics, appLog).Start(ctx)
	}

	handler := server.NewHandler(venueStore, svc, hub, appLog)
	apiServer := server.NewServer(&cfg.Server, handler, appLog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		appLog.WithField("signal", sig.String()).Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			appLog.WithError(err).Error("Server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Graceful shutdown failed")
	}

	appLog.Info("Pitch Oracle API stopped")
}
