// Package metrics exposes the Prometheus scrape endpoint.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitch-oracle/internal/config"
)

// Server serves the Prometheus metrics endpoint on its own port.
type Server struct {
	server *http.Server
	logger *logrus.Logger
}

// NewServer creates a metrics server from configuration.
func NewServer(cfg *config.MetricsConfig, logger *logrus.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.Handler())

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start serves metrics in the background until the context is cancelled.
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.logger.WithField("addr", s.server.Addr).Info("Metrics server starting")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Error("Metrics server error")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.WithError(err).Error("Metrics server shutdown error")
		}
	}()
}
