// Command seed populates the database with demo users and feature clicks
// so the analytics endpoints have something to show on a fresh install.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/akorchagin/feature-analytics/internal/repositories"
)

const (
	userCount  = 20
	clickCount = 300
	clickSpan  = 30 // days of click history
)

var genders = []string{"Male", "Female", "Other"}

var features = []string{
	"login",
	"bar_chart_click",
	"gender_filter",
	"age_group_filter",
	"date_filter",
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "analytics"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema bootstrap: %w", err)
	}

	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	if err := seedClicks(ctx, db); err != nil {
		return err
	}

	log.Printf("seeded %d users and %d clicks", userCount, clickCount)
	return nil
}

// seedUsers inserts demo users user0..user19 with password "1234".
// Re-running the seeder leaves existing users untouched.
func seedUsers(ctx context.Context, db *sqlx.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	query := `
		INSERT INTO users (username, password_hash, age, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (username) DO NOTHING
	`
	for i := 0; i < userCount; i++ {
		username := fmt.Sprintf("user%d", i)
		age := 15 + rand.Intn(46) // 15..60
		gender := genders[rand.Intn(len(genders))]

		if _, err := db.ExecContext(ctx, query, username, string(hash), age, gender); err != nil {
			return fmt.Errorf("insert user %s: %w", username, err)
		}
	}
	return nil
}

// seedClicks spreads random feature clicks over the trailing clickSpan days.
func seedClicks(ctx context.Context, db *sqlx.DB) error {
	var userIDs []int64
	if err := db.SelectContext(ctx, &userIDs, "SELECT user_id FROM users ORDER BY user_id"); err != nil {
		return fmt.Errorf("load user ids: %w", err)
	}
	if len(userIDs) == 0 {
		return fmt.Errorf("no users to attach clicks to")
	}

	query := `INSERT INTO feature_clicks (user_id, feature_name, "timestamp") VALUES ($1, $2, $3)`
	now := time.Now()

	for i := 0; i < clickCount; i++ {
		userID := userIDs[rand.Intn(len(userIDs))]
		feature := features[rand.Intn(len(features))]
		ts := now.AddDate(0, 0, -rand.Intn(clickSpan)).Add(-time.Duration(rand.Intn(86400)) * time.Second)

		if _, err := db.ExecContext(ctx, query, userID, feature, ts); err != nil {
			return fmt.Errorf("insert click: %w", err)
		}
	}
	return nil
}
