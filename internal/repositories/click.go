package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/akorchagin/feature-analytics/internal/logger"
)

// ClickWriteRepository appends feature-click events.
type ClickWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewClickWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ClickWriteRepository {
	return &ClickWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one click for the user. The timestamp is assigned by the
// store at insert time, never taken from the client.
func (r *ClickWriteRepository) Save(ctx context.Context, userID int64, featureName string) error {
	query := `
		INSERT INTO feature_clicks (user_id, feature_name)
		VALUES ($1, $2)
	`
	args := []any{userID, featureName}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, args...)

	logger.Log.Infow("click insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
