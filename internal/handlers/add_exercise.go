package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/fccJashCoda/exerciseTracker/internal/services"
)

//go:generate mockgen -source=add_exercise.go -destination=add_exercise_mock.go -package=handlers

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	AddExercise(ctx context.Context, userID, description, duration, date string) (*models.User, *models.Exercise, error)
}

// NewAddExerciseHandler returns an HTTP handler logging an exercise for a user.
// The response carries the user's id as _id and the date in human-readable form.
// @Summary Log an exercise
// @Description Saves an exercise for an existing user. Errors are reported in the body with status 200.
// @Tags exercises
// @Accept x-www-form-urlencoded
// @Produce json
// @Param userId formData string true "User id"
// @Param description formData string true "Description"
// @Param duration formData number true "Duration in minutes"
// @Param date formData string false "Date (yyyy-mm-dd), defaults to now"
// @Success 200 {object} models.AddExerciseResponse "Logged exercise"
// @Failure 200 {object} models.ErrorResponse "Missing data / User not found / server error"
// @Router /api/exercise/add [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, exercise, err := svc.AddExercise(r.Context(),
			r.FormValue("userId"),
			r.FormValue("description"),
			r.FormValue("duration"),
			r.FormValue("date"),
		)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingData):
				writeError(w, "Missing data")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, "User not found")
			default:
				logger.Log.Errorw("failed to add exercise", "err", err)
				writeError(w, "server error")
			}
			return
		}

		writeJSON(w, models.AddExerciseResponse{
			Username:    user.Username,
			Description: exercise.Description,
			Duration:    exercise.Duration,
			ID:          user.ID,
			Date:        exercise.Date.UTC().Format(models.HumanDateLayout),
		})
	}
}
