package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fccJashCoda/exerciseTracker/internal/logger"
	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/redis/go-redis/v9"
)

// UserCacheRepository caches users by id in Redis.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached users
}

// NewUserCacheRepository creates a cache repository with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id string) (*models.User, error) {
	key := userKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Debugw("cache decode", "key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key, "result", user)
	return &user, nil
}

// Set stores the user under its id with the repository TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := userKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
