package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/akorchagin/feature-analytics/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: LoginRequest{Username: "john", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"access_token": "token123"},
		},
		{
			name: "unknown username",
			body: LoginRequest{Username: "ghost", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost", "secret").
					Return("", services.ErrUnknownUsername)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid username"},
		},
		{
			name: "wrong password",
			body: LoginRequest{Username: "john", Password: "nope"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "nope").
					Return("", services.ErrWrongPassword)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid password"},
		},
		{
			name:         "invalid JSON body",
			rawBody:      "{not-json",
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
		{
			name: "internal error",
			body: LoginRequest{Username: "john", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			var buf bytes.Buffer
			if tt.rawBody != "" {
				buf.WriteString(tt.rawBody)
			} else {
				assert.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
			}

			req := httptest.NewRequest(http.MethodPost, "/login", &buf)
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
