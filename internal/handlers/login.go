package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid username
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// Unknown-username and wrong-password failures produce distinct messages,
// matching the API contract.
// @Summary User login
// @Description Authenticate user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Bearer token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid username / Invalid password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownUsername):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid username",
				})
			case errors.Is(err, services.ErrWrongPassword):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken: token,
		})
	}
}
