package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/akorchagin/feature-analytics/internal/middlewares"
	"github.com/akorchagin/feature-analytics/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTrackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: 7, Username: "alice"}

	tests := []struct {
		name         string
		user         *models.UserDB
		body         any
		rawBody      string
		mockSetup    func(m *MockTracker)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			user: user,
			body: TrackRequest{FeatureName: "bar_chart_click"},
			mockSetup: func(m *MockTracker) {
				m.EXPECT().
					Track(gomock.Any(), user, "bar_chart_click").
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "Interaction recorded"},
		},
		{
			name:         "no authenticated user in context",
			user:         nil,
			body:         TrackRequest{FeatureName: "login"},
			mockSetup:    func(m *MockTracker) {},
			expectedCode: http.StatusForbidden,
			expectedBody: map[string]string{"error": "Invalid token"},
		},
		{
			name:         "invalid JSON body",
			user:         user,
			rawBody:      "{not-json",
			mockSetup:    func(m *MockTracker) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
		{
			name: "internal error",
			user: user,
			body: TrackRequest{FeatureName: "login"},
			mockSetup: func(m *MockTracker) {
				m.EXPECT().
					Track(gomock.Any(), user, "login").
					Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTracker(ctrl)
			tt.mockSetup(mockSvc)

			var buf bytes.Buffer
			if tt.rawBody != "" {
				buf.WriteString(tt.rawBody)
			} else {
				assert.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
			}

			req := httptest.NewRequest(http.MethodPost, "/track", &buf)
			if tt.user != nil {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), tt.user))
			}
			rr := httptest.NewRecorder()

			NewTrackHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
