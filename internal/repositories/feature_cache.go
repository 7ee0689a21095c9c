package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/akorchagin/feature-analytics/internal/logger"
)

const featureListKey = "features:list"

// FeatureCacheRepository caches the distinct feature-name list in Redis.
// Aggregate analytics results are never cached here.
type FeatureCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached list
}

// NewFeatureCacheRepository creates a new repository instance with a TTL.
func NewFeatureCacheRepository(client *redis.Client, expiration time.Duration) *FeatureCacheRepository {
	return &FeatureCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetFeatures fetches the cached feature-name list.
func (r *FeatureCacheRepository) GetFeatures(ctx context.Context) ([]string, error) {
	val, err := r.client.Get(ctx, featureListKey).Result()
	if err != nil {
		logger.Log.Infow("feature cache miss",
			"key", featureListKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("feature list not found in cache")
		}
		return nil, err
	}

	var features []string
	if err := json.Unmarshal([]byte(val), &features); err != nil {
		logger.Log.Errorw("corrupt feature cache entry",
			"key", featureListKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	return features, nil
}

// SetFeatures stores the feature-name list with the configured TTL.
func (r *FeatureCacheRepository) SetFeatures(ctx context.Context, features []string) error {
	data, err := json.Marshal(features)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, featureListKey, data, r.exp).Err()

	logger.Log.Infow("feature cache set",
		"key", featureListKey,
		"count", len(features),
		"error", err,
	)

	return err
}
