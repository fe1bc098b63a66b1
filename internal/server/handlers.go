package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitch-oracle/internal/models"
	"github.com/yourusername/pitch-oracle/internal/predictor"
	"github.com/yourusername/pitch-oracle/internal/stats"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	store     *stats.Store
	predictor *predictor.Service
	hub       *Hub
	logger    *logrus.Logger
	upgrader  websocket.Upgrader
}

// NewHandler creates a new handler with dependencies
func NewHandler(store *stats.Store, svc *predictor.Service, hub *Hub, logger *logrus.Logger) *Handler {
	return &Handler{
		store:     store,
		predictor: svc,
		hub:       hub,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy is enforced by the CORS middleware
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pitch-oracle-api",
		"venues":    h.store.Len(),
		"timestamp": time.Now().UTC(),
	})
}

// ListVenues returns all known venue names
func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues := h.store.Venues()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"venues": venues,
		"count":  len(venues),
	})
}

// GetVenueAnalytics returns the pre-match analytics view for a venue
func (h *Handler) GetVenueAnalytics(w http.ResponseWriter, r *http.Request) {
	venue := chi.URLParam(r, "venue")
	if venue == "" {
		respondError(w, http.StatusBadRequest, "venue is required", nil)
		return
	}

	analytics, err := h.store.Analytics(venue)
	if err != nil {
		if errors.Is(err, models.ErrVenueNotFound) {
			respondError(w, http.StatusNotFound, "venue not found", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to build analytics", err)
		return
	}

	respondJSON(w, http.StatusOK, analytics)
}

// Predict computes the match-outcome estimate for a first-innings score
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Venue == "" {
		respondError(w, http.StatusBadRequest, "venue is required", nil)
		return
	}

	result, err := h.predictor.Predict(req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrVenueNotFound):
			respondError(w, http.StatusNotFound, "venue not found", err)
		case errors.Is(err, models.ErrInvalidScore):
			respondError(w, http.StatusBadRequest, "invalid score", err)
		default:
			h.logger.WithError(err).Error("Prediction failed")
			respondError(w, http.StatusInternalServerError, "prediction failed", err)
		}
		return
	}

	h.hub.Broadcast(result)
	respondJSON(w, http.StatusOK, result)
}

// ServeWS upgrades the connection and subscribes it to the prediction feed
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Debug("Websocket upgrade failed")
		return
	}

	h.hub.Register(conn)

	// Drain client frames so pings and close handshakes are processed
	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
