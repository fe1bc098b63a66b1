package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitch-oracle/internal/config"
	"github.com/yourusername/pitch-oracle/internal/models"
)

// MatchSource supplies completed match records for a season.
type MatchSource interface {
	FetchSeason(ctx context.Context, season int) ([]*models.MatchRecord, error)
	Name() string
}

// HTTPMatchSource fetches match records from the upstream results API.
type HTTPMatchSource struct {
	client  *RateLimitedHTTPClient
	baseURL string
	apiKey  string
	logger  *logrus.Logger
}

// NewHTTPMatchSource creates a match source over the ingestion configuration.
func NewHTTPMatchSource(cfg *config.IngestionConfig, client *RateLimitedHTTPClient, logger *logrus.Logger) *HTTPMatchSource {
	return &HTTPMatchSource{
		client:  client,
		baseURL: cfg.SourceURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Name returns the source identifier for logging and metrics.
func (s *HTTPMatchSource) Name() string {
	return "results_api"
}

type seasonResponse struct {
	Season  int                    `json:"season"`
	Matches []*models.MatchRecord  `json:"matches"`
}

// FetchSeason retrieves all completed matches for a season.
func (s *HTTPMatchSource) FetchSeason(ctx context.Context, season int) ([]*models.MatchRecord, error) {
	url := fmt.Sprintf("%s/api/v1/seasons/%d/matches", s.baseURL, season)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		MatchFetchErrorsTotal.WithLabelValues(s.Name(), "network").Inc()
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		MatchFetchErrorsTotal.WithLabelValues(s.Name(), "http_error").Inc()
		return nil, fmt.Errorf("%w: status %d: %s", ErrSourceUnavailable, resp.StatusCode, string(body))
	}

	var parsed seasonResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		MatchFetchErrorsTotal.WithLabelValues(s.Name(), "decode").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidSourceData, err)
	}

	s.logger.WithFields(logrus.Fields{
		"season":  season,
		"matches": len(parsed.Matches),
	}).Debug("Fetched season matches")

	MatchesFetchedTotal.WithLabelValues(s.Name()).Add(float64(len(parsed.Matches)))
	return parsed.Matches, nil
}
