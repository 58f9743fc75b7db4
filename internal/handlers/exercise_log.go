package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/fccJashCoda/exerciseTracker/internal/services"
)

//go:generate mockgen -source=exercise_log.go -destination=exercise_log_mock.go -package=handlers

// ExerciseLogReader defines the interface that the service must implement.
type ExerciseLogReader interface {
	GetLog(ctx context.Context, userID, from, to, limit string) (*models.ExerciseLog, error)
}

// NewExerciseLogHandler returns an HTTP handler for a user's exercise history.
// Any failure other than a missing user id, including an unknown user, is a generic Server Error.
// @Summary Get exercise log
// @Description Returns a user's exercises dated within [from, to), optionally limited
// @Tags exercises
// @Produce json
// @Param userId query string true "User id"
// @Param from query string false "Inclusive lower bound (yyyy-mm-dd), defaults to 1900-01-01"
// @Param to query string false "Exclusive upper bound (yyyy-mm-dd), defaults to now"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} models.ExerciseLogResponse "Exercise log"
// @Failure 200 {object} models.ErrorResponse "Please provide a user id / Server Error"
// @Router /api/exercise/log [get]
func NewExerciseLogHandler(svc ExerciseLogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		log, err := svc.GetLog(r.Context(), q.Get("userId"), q.Get("from"), q.Get("to"), q.Get("limit"))
		if err != nil {
			if errors.Is(err, services.ErrMissingUserID) {
				writeError(w, "Please provide a user id")
				return
			}
			logger.Log.Errorw("failed to get exercise log", "userID", q.Get("userId"), "err", err)
			writeError(w, "Server Error")
			return
		}

		entries := log.Log
		if entries == nil {
			entries = []models.LogEntry{}
		}
		writeJSON(w, models.ExerciseLogResponse{
			Username: log.Username,
			Count:    len(entries),
			Log:      entries,
		})
	}
}
