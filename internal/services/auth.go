package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrUnknownUsername = errors.New("invalid username")
	ErrWrongPassword   = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUserNotFound    = errors.New("user not found")
)

// uniqueViolation is the Postgres error code for a unique-constraint breach.
const uniqueViolation = "23505"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string, age int, gender string) error
}

// JWTProvider defines token issuance and verification.
type JWTProvider interface {
	Generate(ctx context.Context, userID int64) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// AuthService handles registration, login and token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTProvider
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTProvider) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a bcrypt-hashed password. The username
// pre-check handles the common case; the unique constraint catches the
// concurrent one, so at most one of two racing registrations succeeds.
func (svc *AuthService) Register(ctx context.Context, username, password string, age int, gender string) error {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), age, gender); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			logger.Log.Infow("username taken by concurrent registration", "username", username)
			return ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login verifies credentials and returns a signed token bound to the
// user's ID. Unknown-username and wrong-password failures are reported
// distinctly, preserving the API's observable behavior.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login with unknown username", "username", username)
		return "", ErrUnknownUsername
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login with wrong password", "username", username)
		return "", ErrWrongPassword
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate resolves a bearer token to its user. The user lookup is
// defensive: no delete operation exists, but a token for a missing user
// still fails.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error) {
	userID, err := svc.jwt.GetUserID(ctx, tokenString)
	if err != nil {
		logger.Log.Infow("token verification failed", "err", err)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("token references missing user", "user_id", userID)
		return nil, ErrUserNotFound
	}

	return user, nil
}
