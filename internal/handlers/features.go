package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akorchagin/feature-analytics/internal/logger"
)

// FeatureLister defines the interface that the feature-list service must implement.
type FeatureLister interface {
	ListFeatures(ctx context.Context) ([]string, error)
}

// FeaturesResponse lists every recorded feature name
// swagger:model FeaturesResponse
type FeaturesResponse struct {
	// Distinct feature names, alphabetical
	Features []string `json:"features"`
}

// FeaturesErrorResponse represents an error response for the feature list
// swagger:model FeaturesErrorResponse
type FeaturesErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewFeaturesHandler returns an HTTP handler listing the distinct feature
// names ever recorded, for populating the dashboard's feature selector.
// @Summary List recorded feature names
// @Description Returns every distinct feature name, served from cache when possible
// @Tags analytics
// @Produce json
// @Success 200 {object} handlers.FeaturesResponse "Feature names"
// @Failure 403 {object} handlers.FeaturesErrorResponse "Invalid token"
// @Router /features [get]
// @Security BearerAuth
func NewFeaturesHandler(svc FeatureLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		features, err := svc.ListFeatures(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeaturesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if features == nil {
			features = []string{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FeaturesResponse{
			Features: features,
		})
	}
}
