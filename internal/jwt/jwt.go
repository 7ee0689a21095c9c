package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT provides methods to generate and validate bearer tokens.
type JWT struct {
	SecretKey string        // Symmetric key for signing tokens
	Exp       time.Duration // Token lifetime; zero means tokens never expire
}

// New creates a new JWT instance.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token binding the given numeric user ID.
// The exp claim is only set when a nonzero lifetime is configured.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
	}
	if j.Exp > 0 {
		claims["iat"] = time.Now().Unix()
		claims["exp"] = time.Now().Add(j.Exp).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetUserID parses the token string and returns the embedded user ID if valid.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		// Numeric claims decode as float64 from JSON.
		if raw, ok := claims["user_id"].(float64); ok {
			return int64(raw), nil
		}
		return 0, errors.New("user_id not found in token")
	}
	return 0, errors.New("invalid token")
}

// Validate checks the token signature and claims without extracting anything.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetUserID(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
