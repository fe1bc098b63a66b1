package predictor

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitch-oracle/internal/config"
	"github.com/yourusername/pitch-oracle/internal/models"
)

// VenueLookup supplies venue aggregates. Lookups for unknown venues fail
// with models.ErrVenueNotFound.
type VenueLookup interface {
	Lookup(venue string) (models.VenueStats, error)
}

// ProbabilityModel is the externally-trained batting-side win classifier.
type ProbabilityModel interface {
	FeatureNames() []string
	Version() string
	PredictProbability(features []float64) (float64, error)
}

// MarginEstimator is the externally-trained winning-margin regressor. Its
// raw output is advisory only.
type MarginEstimator interface {
	FeatureNames() []string
	PredictMargin(features []float64) (float64, error)
}

// Service is the prediction entry point: it validates the request, builds
// the model feature vectors, queries both models, and blends the raw outputs
// with the venue baseline into the final estimate.
type Service struct {
	store          VenueLookup
	winModel       ProbabilityModel
	marginModel    MarginEstimator
	winFeatures    *FeatureBuilder
	marginFeatures *FeatureBuilder
	cache          *ResultCache
	minScore       int
	maxScore       int
	logger         *logrus.Logger
}

// NewService creates a prediction service over loaded artifacts.
func NewService(cfg *config.PredictorConfig, store VenueLookup, winModel ProbabilityModel, marginModel MarginEstimator, logger *logrus.Logger) *Service {
	return &Service{
		store:          store,
		winModel:       winModel,
		marginModel:    marginModel,
		winFeatures:    NewFeatureBuilder(winModel.FeatureNames()),
		marginFeatures: NewFeatureBuilder(marginModel.FeatureNames()),
		cache: NewResultCache(
			time.Duration(cfg.CacheTTLSeconds)*time.Second,
			cfg.CacheMaxSize,
		),
		minScore: cfg.MinScore,
		maxScore: cfg.MaxScore,
		logger:   logger,
	}
}

// Predict produces the final bounded probability and margin estimate for a
// first-innings score at a venue. Any error aborts the whole request; no
// partial result is produced.
func (s *Service) Predict(req models.PredictionRequest) (*models.PredictionResult, error) {
	start := time.Now()
	defer func() {
		PredictionLatency.Observe(time.Since(start).Seconds())
	}()

	if req.Score < s.minScore || req.Score > s.maxScore {
		PredictionErrorsTotal.WithLabelValues("invalid_score").Inc()
		return nil, fmt.Errorf("%w: %d outside [%d, %d]", models.ErrInvalidScore, req.Score, s.minScore, s.maxScore)
	}

	venueStats, err := s.store.Lookup(req.Venue)
	if err != nil {
		PredictionErrorsTotal.WithLabelValues("venue_not_found").Inc()
		return nil, err
	}

	key := CacheKey{Venue: req.Venue, Score: req.Score, ModelVersion: s.winModel.Version()}
	if cached := s.cache.Get(key); cached != nil {
		s.logger.WithField("cache_key", key.String()).Debug("Cache hit for prediction")
		PredictionsTotal.WithLabelValues(string(cached.Outcome), "true").Inc()
		return s.withLabels(cached, &req), nil
	}

	rawProbability, err := s.winModel.PredictProbability(s.winFeatures.Build(venueStats, req.Score))
	if err != nil {
		PredictionErrorsTotal.WithLabelValues("model").Inc()
		return nil, fmt.Errorf("%w: %v", ErrModelEvaluation, err)
	}

	rawMargin, err := s.marginModel.PredictMargin(s.marginFeatures.Build(venueStats, req.Score))
	if err != nil {
		PredictionErrorsTotal.WithLabelValues("model").Inc()
		return nil, fmt.Errorf("%w: %v", ErrModelEvaluation, err)
	}

	probability := BlendProbability(req.Score, venueStats.AvgWinningScore, rawProbability)
	margin := BlendMargin(req.Score, venueStats.AvgWinningScore, rawMargin)
	outcome := Classify(probability, margin)

	result := &models.PredictionResult{
		ID:           uuid.New(),
		Venue:        req.Venue,
		Score:        req.Score,
		Probability:  probability,
		Margin:       margin,
		Outcome:      outcome.Kind,
		ModelVersion: s.winModel.Version(),
		PredictedAt:  time.Now().UTC(),
	}

	s.cache.Set(key, result)

	s.logger.WithFields(logrus.Fields{
		"venue":       req.Venue,
		"score":       req.Score,
		"probability": probability,
		"outcome":     outcome.Kind,
	}).Debug("Prediction computed")

	PredictionsTotal.WithLabelValues(string(outcome.Kind), "false").Inc()
	return s.withLabels(result, &req), nil
}

// withLabels copies a result and applies the request's display labels.
// Cached entries are shared across requests, so the copy keeps them
// label-free.
func (s *Service) withLabels(result *models.PredictionResult, req *models.PredictionRequest) *models.PredictionResult {
	out := *result
	out.BattingTeam = req.BattingLabel()
	out.BowlingTeam = req.BowlingLabel()
	return &out
}
