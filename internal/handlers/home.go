package handlers

import (
	"encoding/json"
	"net/http"
)

// HomeResponse is the liveness message
// swagger:model HomeResponse
type HomeResponse struct {
	// Liveness message
	// default: API Working
	Message string `json:"message"`
}

// NewHomeHandler returns the unauthenticated liveness handler.
// @Summary Liveness check
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.HomeResponse "Service is up"
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HomeResponse{
			Message: "API Working",
		})
	}
}
