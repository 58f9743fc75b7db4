package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/metrics"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/fccJashCoda/exerciseTracker/internal/repositories"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// Error variables
var (
	ErrInvalidUsername   = errors.New("invalid username")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string) (*models.User, error)
}

// UserCache caches users by id.
type UserCache interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
}

// UserService is the user registry.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache // optional
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// ListUsers returns every registered user.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new user with a unique username.
func (svc *UserService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, ErrInvalidUsername
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	user, err := svc.writer.Save(ctx, username)
	if errors.Is(err, repositories.ErrDuplicateUsername) {
		logger.Log.Infow("user created concurrently", "username", username)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	metrics.UsersCreated.Inc()
	logger.Log.Infow("user created", "id", user.ID, "username", user.Username)
	return user, nil
}

// GetUser returns the user with the given id, or nil if it does not exist.
// Lookups go through the cache when one is configured.
func (svc *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, id)
		switch {
		case err != nil:
			metrics.UserCacheLookups.WithLabelValues("error").Inc()
			logger.Log.Warnw("user cache lookup failed", "id", id, "err", err)
		case cached != nil:
			metrics.UserCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.UserCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	if user == nil {
		return nil, nil
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to cache user", "id", id, "err", err)
		}
	}
	return user, nil
}
