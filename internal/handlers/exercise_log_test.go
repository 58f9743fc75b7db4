package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/fccJashCoda/exerciseTracker/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestExerciseLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockExerciseLogReader)
		expectedBody string
	}{
		{
			name:   "success with filters",
			target: "/api/exercise/log?userId=user-1&from=2023-01-01&to=2023-02-01&limit=2",
			mockSetup: func(m *MockExerciseLogReader) {
				m.EXPECT().
					GetLog(gomock.Any(), "user-1", "2023-01-01", "2023-02-01", "2").
					Return(&models.ExerciseLog{
						Username: "alice",
						Log: []models.LogEntry{
							{Description: "run", Duration: 30, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
							{Description: "swim", Duration: 12.5, Date: time.Date(2023, 1, 5, 8, 0, 0, 0, time.UTC)},
						},
					}, nil)
			},
			expectedBody: `{"username":"alice","count":2,"log":[` +
				`{"description":"run","duration":30,"date":"2023-01-01T00:00:00.000Z"},` +
				`{"description":"swim","duration":12.5,"date":"2023-01-05T08:00:00.000Z"}]}`,
		},
		{
			name:   "empty log",
			target: "/api/exercise/log?userId=user-1",
			mockSetup: func(m *MockExerciseLogReader) {
				m.EXPECT().
					GetLog(gomock.Any(), "user-1", "", "", "").
					Return(&models.ExerciseLog{Username: "alice"}, nil)
			},
			expectedBody: `{"username":"alice","count":0,"log":[]}`,
		},
		{
			name:   "missing user id",
			target: "/api/exercise/log",
			mockSetup: func(m *MockExerciseLogReader) {
				m.EXPECT().
					GetLog(gomock.Any(), "", "", "", "").
					Return(nil, services.ErrMissingUserID)
			},
			expectedBody: `{"error":"Please provide a user id"}`,
		},
		{
			name:   "unknown user",
			target: "/api/exercise/log?userId=ghost",
			mockSetup: func(m *MockExerciseLogReader) {
				m.EXPECT().
					GetLog(gomock.Any(), "ghost", "", "", "").
					Return(nil, services.ErrUserNotFound)
			},
			expectedBody: `{"error":"Server Error"}`,
		},
		{
			name:   "invalid limit",
			target: "/api/exercise/log?userId=user-1&limit=many",
			mockSetup: func(m *MockExerciseLogReader) {
				m.EXPECT().
					GetLog(gomock.Any(), "user-1", "", "", "many").
					Return(nil, services.ErrInvalidLimit)
			},
			expectedBody: `{"error":"Server Error"}`,
		},
		{
			name:   "store failure",
			target: "/api/exercise/log?userId=user-1",
			mockSetup: func(m *MockExerciseLogReader) {
				m.EXPECT().
					GetLog(gomock.Any(), "user-1", "", "", "").
					Return(nil, errors.New("query failed"))
			},
			expectedBody: `{"error":"Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockExerciseLogReader(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewExerciseLogHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
