package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fccJashCoda/exerciseTracker/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestUserCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewUserCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get user", func(t *testing.T) {
		user := &models.User{ID: "id-1", Username: "alice"}

		require.NoError(t, repo.Set(ctx, user))

		got, err := repo.Get(ctx, "id-1")
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Get missing key is a miss", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupt value is an error", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, userKey("broken"), "{not json", 0).Err())

		got, err := repo.Get(ctx, "broken")
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached user expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, &models.User{ID: "id-2", Username: "bob"}))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, "id-2")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserCacheRepository_ClosedClient(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	require.NoError(t, rdb.Close())

	repo := NewUserCacheRepository(rdb, time.Minute)

	got, err := repo.Get(context.Background(), "id-1")
	assert.Error(t, err)
	assert.Nil(t, got)

	assert.Error(t, repo.Set(context.Background(), &models.User{ID: "id-1", Username: "alice"}))
}
