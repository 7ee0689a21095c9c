package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/models"
	"github.com/akorchagin/feature-analytics/internal/services"
)

// Tokener defines the token extraction needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserAuthenticator resolves a bearer token to its user.
type UserAuthenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error)
}

type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if the request did not pass AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that verifies the bearer token and
// resolves the user behind it, aborting the request before any handler
// runs. A bad or missing token yields 403; a token for a user that no
// longer exists yields 404.
func AuthMiddleware(tokener Tokener, authenticator UserAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			user, err := authenticator.Authenticate(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				switch {
				case errors.Is(err, services.ErrUserNotFound):
					writeAuthError(w, http.StatusNotFound, "User not found")
				case errors.Is(err, services.ErrInvalidToken):
					writeAuthError(w, http.StatusForbidden, "Invalid token")
				default:
					writeAuthError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authErrorResponse{Error: msg})
}
