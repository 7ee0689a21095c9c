package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/akorchagin/feature-analytics/internal/models"
	"github.com/akorchagin/feature-analytics/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAnalyticsService_Report_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bar := []models.FeatureCount{
		{FeatureName: "login", Count: 3},
		{FeatureName: "bar_chart_click", Count: 1},
	}

	tests := []struct {
		name       string
		startDate  string
		endDate    string
		ageGroup   string
		gender     string
		wantFilter func(f models.ClickFilter) bool
	}{
		{
			name: "no filters",
			wantFilter: func(f models.ClickFilter) bool {
				return f.StartDate == nil && f.EndDate == nil && f.Gender == "" && f.AgeGroup == ""
			},
		},
		{
			name:      "date-only start_date",
			startDate: "2025-06-01",
			wantFilter: func(f models.ClickFilter) bool {
				return f.StartDate != nil && f.StartDate.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
			},
		},
		{
			name:      "datetime start and end",
			startDate: "2025-06-01T10:30:00",
			endDate:   "2025-06-30T23:59:59",
			wantFilter: func(f models.ClickFilter) bool {
				return f.StartDate != nil && f.EndDate != nil &&
					f.StartDate.Hour() == 10 && f.EndDate.Hour() == 23
			},
		},
		{
			name:     "recognized age group and gender",
			ageGroup: "18-40",
			gender:   "Female",
			wantFilter: func(f models.ClickFilter) bool {
				return f.AgeGroup == models.AgeGroup18To40 && f.Gender == "Female"
			},
		},
		{
			name:     "unrecognized age group passes through as no-op",
			ageGroup: "30-50",
			wantFilter: func(f models.ClickFilter) bool {
				return f.AgeGroup == "30-50"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockAnalyticsReader(ctrl)
			svc := services.NewAnalyticsService(mockReader, nil)

			mockReader.EXPECT().
				CountByFeature(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, f models.ClickFilter) ([]models.FeatureCount, error) {
					assert.True(t, tt.wantFilter(f), "unexpected filter: %+v", f)
					return bar, nil
				})

			gotBar, gotLine, err := svc.Report(context.Background(), tt.startDate, tt.endDate, tt.ageGroup, tt.gender, "")
			assert.NoError(t, err)
			assert.Equal(t, bar, gotBar)
			assert.Empty(t, gotLine)
		})
	}
}

func TestAnalyticsService_Report_InvalidDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAnalyticsReader(ctrl)
	svc := services.NewAnalyticsService(mockReader, nil)

	// No query runs when a date filter fails to parse.
	bar, line, err := svc.Report(context.Background(), "not-a-date", "", "", "", "")
	assert.ErrorIs(t, err, services.ErrInvalidStartDate)
	assert.Nil(t, bar)
	assert.Nil(t, line)

	bar, line, err = svc.Report(context.Background(), "", "31/12/2025", "", "", "")
	assert.ErrorIs(t, err, services.ErrInvalidEndDate)
	assert.Nil(t, bar)
	assert.Nil(t, line)
}

func TestAnalyticsService_Report_SelectedFeature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAnalyticsReader(ctrl)
	svc := services.NewAnalyticsService(mockReader, nil)

	bar := []models.FeatureCount{{FeatureName: "login", Count: 2}}
	line := []models.DateCount{
		{Date: "2025-06-01", Count: 1},
		{Date: "2025-06-02", Count: 1},
	}

	mockReader.EXPECT().
		CountByFeature(gomock.Any(), gomock.Any()).
		Return(bar, nil)
	mockReader.EXPECT().
		CountByDate(gomock.Any(), gomock.Any(), "login").
		Return(line, nil)

	gotBar, gotLine, err := svc.Report(context.Background(), "", "", "", "", "login")
	assert.NoError(t, err)
	assert.Equal(t, bar, gotBar)
	assert.Equal(t, line, gotLine)
}

func TestAnalyticsService_Report_EmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAnalyticsReader(ctrl)
	svc := services.NewAnalyticsService(mockReader, nil)

	mockReader.EXPECT().
		CountByFeature(gomock.Any(), gomock.Any()).
		Return([]models.FeatureCount{}, nil)
	mockReader.EXPECT().
		CountByDate(gomock.Any(), gomock.Any(), "login").
		Return([]models.DateCount{}, nil)

	bar, line, err := svc.Report(context.Background(), "", "", "", "", "login")
	assert.NoError(t, err)
	assert.Empty(t, bar)
	assert.Empty(t, line)
}

func TestAnalyticsService_Report_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAnalyticsReader(ctrl)
	svc := services.NewAnalyticsService(mockReader, nil)

	mockReader.EXPECT().
		CountByFeature(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db error"))

	_, _, err := svc.Report(context.Background(), "", "", "", "", "")
	assert.EqualError(t, err, "db error")
}

func TestAnalyticsService_ListFeatures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	features := []string{"bar_chart_click", "login"}

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		mockCache := services.NewMockFeatureCache(ctrl)
		svc := services.NewAnalyticsService(mockReader, mockCache)

		mockCache.EXPECT().GetFeatures(gomock.Any()).Return(features, nil)

		got, err := svc.ListFeatures(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, features, got)
	})

	t.Run("cache miss falls back to store and repopulates", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		mockCache := services.NewMockFeatureCache(ctrl)
		svc := services.NewAnalyticsService(mockReader, mockCache)

		mockCache.EXPECT().GetFeatures(gomock.Any()).Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().DistinctFeatures(gomock.Any()).Return(features, nil)
		mockCache.EXPECT().SetFeatures(gomock.Any(), features).Return(nil)

		got, err := svc.ListFeatures(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, features, got)
	})

	t.Run("cache write failure is ignored", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		mockCache := services.NewMockFeatureCache(ctrl)
		svc := services.NewAnalyticsService(mockReader, mockCache)

		mockCache.EXPECT().GetFeatures(gomock.Any()).Return(nil, errors.New("cache miss"))
		mockReader.EXPECT().DistinctFeatures(gomock.Any()).Return(features, nil)
		mockCache.EXPECT().SetFeatures(gomock.Any(), features).Return(errors.New("redis down"))

		got, err := svc.ListFeatures(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, features, got)
	})

	t.Run("nil cache goes straight to store", func(t *testing.T) {
		mockReader := services.NewMockAnalyticsReader(ctrl)
		svc := services.NewAnalyticsService(mockReader, nil)

		mockReader.EXPECT().DistinctFeatures(gomock.Any()).Return(features, nil)

		got, err := svc.ListFeatures(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, features, got)
	})
}
