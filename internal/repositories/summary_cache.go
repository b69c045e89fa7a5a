package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/recipe-keeper/internal/logger"
)

// ErrSummaryNotCached is returned by Get when no summary is stored for the recipe.
var ErrSummaryNotCached = errors.New("recipe summary not found in cache")

// RecipeSummaryCacheRepository caches sanitized recipe summaries in Redis.
type RecipeSummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

// NewRecipeSummaryCacheRepository creates a new repository instance with the given TTL.
func NewRecipeSummaryCacheRepository(client *redis.Client, expiration time.Duration) *RecipeSummaryCacheRepository {
	return &RecipeSummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(recipeID string) string {
	return fmt.Sprintf("recipe_summary:%s", recipeID)
}

// Get returns the cached summary of recipeID.
func (r *RecipeSummaryCacheRepository) Get(ctx context.Context, recipeID string) (string, error) {
	key := summaryKey(recipeID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Debugw("summary cache get",
		"key", key,
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrSummaryNotCached, recipeID)
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores summary for recipeID with the repository TTL.
func (r *RecipeSummaryCacheRepository) Set(ctx context.Context, recipeID, summary string) error {
	key := summaryKey(recipeID)
	err := r.client.Set(ctx, key, summary, r.exp).Err()

	logger.Log.Debugw("summary cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
