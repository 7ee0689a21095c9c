package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/models"
)

// AnalyticsReadRepository runs aggregate queries over the join of
// feature_clicks and users.
type AnalyticsReadRepository struct {
	db *sqlx.DB
}

func NewAnalyticsReadRepository(db *sqlx.DB) *AnalyticsReadRepository {
	return &AnalyticsReadRepository{db: db}
}

// buildPredicates turns a ClickFilter into a WHERE fragment with positional
// args. All supplied filters are conjunctive; an empty filter yields an
// empty fragment.
func buildPredicates(f models.ClickFilter) (string, []any) {
	var conds []string
	var args []any

	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf(`fc."timestamp" >= $%d`, len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf(`fc."timestamp" <= $%d`, len(args)))
	}
	if f.Gender != "" {
		args = append(args, f.Gender)
		conds = append(conds, fmt.Sprintf(`u.gender = $%d`, len(args)))
	}

	// Only the three recognized bracket literals filter; anything else
	// is a no-op, matching the API contract.
	switch f.AgeGroup {
	case models.AgeGroupUnder18:
		conds = append(conds, `u.age < 18`)
	case models.AgeGroup18To40:
		conds = append(conds, `u.age BETWEEN 18 AND 40`)
	case models.AgeGroupOver40:
		conds = append(conds, `u.age > 40`)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// CountByFeature returns the click count per distinct feature name within
// the filtered set.
func (r *AnalyticsReadRepository) CountByFeature(ctx context.Context, f models.ClickFilter) ([]models.FeatureCount, error) {
	where, args := buildPredicates(f)

	query := fmt.Sprintf(`
		SELECT fc.feature_name, COUNT(*) AS count
		FROM feature_clicks fc
		JOIN users u ON u.user_id = fc.user_id
		%s
		GROUP BY fc.feature_name
		ORDER BY count DESC, fc.feature_name
	`, where)

	rows := []models.FeatureCount{}
	err := r.db.SelectContext(ctx, &rows, query, args...)

	logger.Log.Infow("feature count query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByDate returns the click count per calendar day for one feature
// within the filtered set, date-ascending. Time-of-day is truncated, so
// clicks from different hours of the same day land in one bucket.
func (r *AnalyticsReadRepository) CountByDate(ctx context.Context, f models.ClickFilter, featureName string) ([]models.DateCount, error) {
	where, args := buildPredicates(f)

	args = append(args, featureName)
	featureCond := fmt.Sprintf(`fc.feature_name = $%d`, len(args))
	if where == "" {
		where = "WHERE " + featureCond
	} else {
		where += " AND " + featureCond
	}

	query := fmt.Sprintf(`
		SELECT TO_CHAR(DATE(fc."timestamp"), 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM feature_clicks fc
		JOIN users u ON u.user_id = fc.user_id
		%s
		GROUP BY DATE(fc."timestamp")
		ORDER BY DATE(fc."timestamp")
	`, where)

	rows := []models.DateCount{}
	err := r.db.SelectContext(ctx, &rows, query, args...)

	logger.Log.Infow("date count query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DistinctFeatures returns every feature name ever recorded, alphabetical.
func (r *AnalyticsReadRepository) DistinctFeatures(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT feature_name
		FROM feature_clicks
		ORDER BY feature_name
	`

	features := []string{}
	err := r.db.SelectContext(ctx, &features, query)

	logger.Log.Infow("distinct features query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(features),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return features, nil
}
