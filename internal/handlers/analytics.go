package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/models"
	"github.com/akorchagin/feature-analytics/internal/services"
)

// Reporter defines the interface that the analytics service must implement.
type Reporter interface {
	Report(ctx context.Context, startDate, endDate, ageGroup, gender, selectedFeature string) ([]models.FeatureCount, []models.DateCount, error)
}

// AnalyticsResponse holds both chart result sets
// swagger:model AnalyticsResponse
type AnalyticsResponse struct {
	// Click count per distinct feature name
	BarChart []models.FeatureCount `json:"bar_chart"`

	// Click count per calendar day for the selected feature
	LineChart []models.DateCount `json:"line_chart"`
}

// AnalyticsErrorResponse represents an error response for analytics
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	// Error message
	// default: Invalid start_date format
	Error string `json:"error"`
}

// NewAnalyticsHandler returns an HTTP handler for the aggregate analytics
// query. All filters are optional and conjunctive; a malformed date aborts
// the whole request with no partial result.
// @Summary Aggregate click analytics
// @Description Returns click counts grouped by feature, and per day for one selected feature
// @Tags analytics
// @Produce json
// @Param start_date query string false "Inclusive lower timestamp bound, ISO-8601"
// @Param end_date query string false "Inclusive upper timestamp bound, ISO-8601"
// @Param age_group query string false "One of <18, 18-40, >40; other values ignored"
// @Param gender query string false "Exact gender match"
// @Param selected_feature query string false "Feature for the line chart"
// @Success 200 {object} handlers.AnalyticsResponse "Both chart result sets"
// @Failure 400 {object} handlers.AnalyticsErrorResponse "Invalid start_date format / Invalid end_date format"
// @Failure 403 {object} handlers.AnalyticsErrorResponse "Invalid token"
// @Router /analytics [get]
// @Security BearerAuth
func NewAnalyticsHandler(svc Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		q := r.URL.Query()

		barChart, lineChart, err := svc.Report(
			r.Context(),
			q.Get("start_date"),
			q.Get("end_date"),
			q.Get("age_group"),
			q.Get("gender"),
			q.Get("selected_feature"),
		)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStartDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AnalyticsErrorResponse{
					Error: "Invalid start_date format",
				})
			case errors.Is(err, services.ErrInvalidEndDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AnalyticsErrorResponse{
					Error: "Invalid end_date format",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AnalyticsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		// Empty result sets serialize as empty arrays, not null.
		if barChart == nil {
			barChart = []models.FeatureCount{}
		}
		if lineChart == nil {
			lineChart = []models.DateCount{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AnalyticsResponse{
			BarChart:  barChart,
			LineChart: lineChart,
		})
	}
}
