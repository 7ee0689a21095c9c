package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/middlewares"
	"github.com/akorchagin/feature-analytics/internal/models"
)

// Tracker defines the interface that the tracking service must implement.
type Tracker interface {
	Track(ctx context.Context, user *models.UserDB, featureName string) error
}

// TrackRequest represents the JSON body for recording an interaction
// swagger:model TrackRequest
type TrackRequest struct {
	// Feature name (free-form, no allow-list)
	// required: true
	// default: bar_chart_click
	FeatureName string `json:"feature_name"`
}

// TrackResponse represents a successful tracking response
// swagger:model TrackResponse
type TrackResponse struct {
	// Success message
	// default: Interaction recorded
	Message string `json:"message"`
}

// TrackErrorResponse represents an error response for tracking
// swagger:model TrackErrorResponse
type TrackErrorResponse struct {
	// Error message
	// default: Invalid token
	Error string `json:"error"`
}

// NewTrackHandler returns an HTTP handler for recording a feature click.
// The authenticated user comes from the auth middleware; the event
// timestamp is assigned by the store.
// @Summary Record a feature interaction
// @Description Appends one click event bound to the authenticated user
// @Tags tracking
// @Accept json
// @Produce json
// @Param trackRequest body handlers.TrackRequest true "Tracked feature"
// @Success 201 {object} handlers.TrackResponse "Interaction recorded"
// @Failure 403 {object} handlers.TrackErrorResponse "Invalid token"
// @Failure 404 {object} handlers.TrackErrorResponse "User not found"
// @Router /track [post]
// @Security BearerAuth
func NewTrackHandler(svc Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			// Route misconfiguration: the auth middleware did not run.
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(TrackErrorResponse{
				Error: "Invalid token",
			})
			return
		}

		var req TrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrackErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := svc.Track(r.Context(), user, req.FeatureName); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrackErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TrackResponse{
			Message: "Interaction recorded",
		})
	}
}
