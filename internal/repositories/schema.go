package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/akorchagin/feature-analytics/internal/logger"
)

// schema is applied at startup. There is no migration mechanism: both
// tables are created if absent and never altered afterwards.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id       BIGSERIAL PRIMARY KEY,
	username      VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	age           INTEGER NOT NULL,
	gender        VARCHAR(20) NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS feature_clicks (
	click_id     BIGSERIAL PRIMARY KEY,
	user_id      BIGINT NOT NULL REFERENCES users (user_id),
	feature_name VARCHAR(100) NOT NULL,
	"timestamp"  TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_feature_clicks_feature_name ON feature_clicks (feature_name);
CREATE INDEX IF NOT EXISTS idx_feature_clicks_timestamp ON feature_clicks ("timestamp");
`

// Migrate creates the users and feature_clicks tables if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("schema bootstrap failed", "error", err)
	}
	return err
}
