package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/fccJashCoda/exerciseTracker/internal/services"
)

//go:generate mockgen -source=new_user.go -destination=new_user_mock.go -package=handlers

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
}

// NewCreateUserHandler returns an HTTP handler registering a user.
// @Summary Register a user
// @Description Creates a user with a unique username. Errors are reported in the body with status 200.
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Success 200 {object} models.User "Created user"
// @Failure 200 {object} models.ErrorResponse "Invalid username / user already exists / Server Error"
// @Router /api/exercise/new-user [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.CreateUser(r.Context(), r.FormValue("username"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUsername):
				writeError(w, "Invalid username")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, "user already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, "Server Error")
			}
			return
		}
		writeJSON(w, user)
	}
}
