package handlers

import (
	"context"
	"net/http"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Description Returns all users projected to id and username
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Users"
// @Failure 200 {object} models.ErrorResponse "Server Error"
// @Router /api/exercise/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, "Server Error")
			return
		}
		if users == nil {
			users = []models.User{}
		}
		writeJSON(w, users)
	}
}
