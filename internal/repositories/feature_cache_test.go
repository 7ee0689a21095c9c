package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestFeatureCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewFeatureCacheRepository(rdb, 2*time.Second)

	t.Run("set and get feature list", func(t *testing.T) {
		features := []string{"bar_chart_click", "login"}

		assert.NoError(t, repo.SetFeatures(ctx, features))

		got, err := repo.GetFeatures(ctx)
		assert.NoError(t, err)
		assert.Equal(t, features, got)
	})

	t.Run("empty list round-trips", func(t *testing.T) {
		assert.NoError(t, repo.SetFeatures(ctx, []string{}))

		got, err := repo.GetFeatures(ctx)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing key returns error", func(t *testing.T) {
		assert.NoError(t, rdb.Del(ctx, "features:list").Err())

		_, err := repo.GetFeatures(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "feature list not found")
	})

	t.Run("cached list expires", func(t *testing.T) {
		assert.NoError(t, repo.SetFeatures(ctx, []string{"login"}))

		time.Sleep(3 * time.Second)

		_, err := repo.GetFeatures(ctx)
		assert.Error(t, err)
	})
}
