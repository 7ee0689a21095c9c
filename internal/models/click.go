package models

import (
	"time"
)

// FeatureClickDB represents a single tracked feature interaction.
// Clicks are append-only: they are never updated or deleted.
type FeatureClickDB struct {
	ClickID     int64     `json:"click_id" db:"click_id"`         // Primary key, assigned on insert
	UserID      int64     `json:"user_id" db:"user_id"`           // References users.user_id
	FeatureName string    `json:"feature_name" db:"feature_name"` // Free-form feature identifier
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`       // Assigned by the store at insert
}

// ClickEvent is the payload published to Kafka for every recorded click.
type ClickEvent struct {
	EventID     string `json:"event_id"`
	UserID      int64  `json:"user_id"`
	FeatureName string `json:"feature_name"`
	Timestamp   int64  `json:"timestamp"`
}
