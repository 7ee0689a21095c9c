package services

import (
	"context"
	"errors"
	"time"

	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/models"
)

// Error variables
var (
	ErrInvalidStartDate = errors.New("invalid start_date format")
	ErrInvalidEndDate   = errors.New("invalid end_date format")
)

// dateLayouts are the accepted ISO-8601 shapes for analytics date filters.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AnalyticsReader defines the aggregate queries the service composes.
type AnalyticsReader interface {
	CountByFeature(ctx context.Context, f models.ClickFilter) ([]models.FeatureCount, error)
	CountByDate(ctx context.Context, f models.ClickFilter, featureName string) ([]models.DateCount, error)
	DistinctFeatures(ctx context.Context) ([]string, error)
}

// FeatureCache caches the distinct feature-name list.
type FeatureCache interface {
	GetFeatures(ctx context.Context) ([]string, error)
	SetFeatures(ctx context.Context, features []string) error
}

// AnalyticsService builds bar-chart and line-chart aggregates over the
// recorded clicks.
type AnalyticsService struct {
	reader AnalyticsReader
	cache  FeatureCache
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(reader AnalyticsReader, cache FeatureCache) *AnalyticsService {
	return &AnalyticsService{
		reader: reader,
		cache:  cache,
	}
}

// parseDate parses one ISO-8601 date/time string.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Report computes both result sets for the given optional filters. A
// malformed date aborts the whole request; an unrecognized age group is a
// silent no-op. The line chart is computed only when a feature is selected,
// over the same filtered set.
func (s *AnalyticsService) Report(
	ctx context.Context,
	startDate, endDate, ageGroup, gender, selectedFeature string,
) ([]models.FeatureCount, []models.DateCount, error) {
	var filter models.ClickFilter

	if startDate != "" {
		t, err := parseDate(startDate)
		if err != nil {
			logger.Log.Infow("unparsable start_date", "value", startDate, "error", err)
			return nil, nil, ErrInvalidStartDate
		}
		filter.StartDate = &t
	}
	if endDate != "" {
		t, err := parseDate(endDate)
		if err != nil {
			logger.Log.Infow("unparsable end_date", "value", endDate, "error", err)
			return nil, nil, ErrInvalidEndDate
		}
		filter.EndDate = &t
	}
	filter.Gender = gender
	filter.AgeGroup = ageGroup

	barChart, err := s.reader.CountByFeature(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to count by feature", "error", err)
		return nil, nil, err
	}

	lineChart := []models.DateCount{}
	if selectedFeature != "" {
		lineChart, err = s.reader.CountByDate(ctx, filter, selectedFeature)
		if err != nil {
			logger.Log.Errorw("failed to count by date", "feature", selectedFeature, "error", err)
			return nil, nil, err
		}
	}

	return barChart, lineChart, nil
}

// ListFeatures returns every recorded feature name, serving from the cache
// when possible. A cache failure falls through to the store; a cache
// write failure is logged and ignored.
func (s *AnalyticsService) ListFeatures(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if features, err := s.cache.GetFeatures(ctx); err == nil {
			return features, nil
		}
	}

	features, err := s.reader.DistinctFeatures(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list features", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetFeatures(ctx, features); err != nil {
			logger.Log.Errorw("failed to cache feature list", "error", err)
		}
	}

	return features, nil
}
