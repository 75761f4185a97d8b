// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// balanceCacheTTL bounds staleness when an invalidation is lost; the ledger
// self-heals on the next resync anyway.
const balanceCacheTTL = 24 * time.Hour

// redisBalanceCache implements the adapter.BalanceCache interface on Redis.
type redisBalanceCache struct {
	client *redis.Client
}

// NewRedisBalanceCache creates a new Redis-backed balance cache.
func NewRedisBalanceCache(client *redis.Client) adapter.BalanceCache {
	return &redisBalanceCache{
		client: client,
	}
}

// Get reads the cached balance. A miss returns ok=false with no error.
func (c *redisBalanceCache) Get(ctx context.Context, userID uuid.UUID) (int, bool, error) {
	value, err := c.client.Get(ctx, balanceKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read balance cache: %w", err)
	}

	points, err := strconv.Atoi(value)
	if err != nil {
		// Corrupt value; treat as a miss so the caller falls back to the database.
		return 0, false, nil
	}
	return points, true, nil
}

// Set stores the balance for a user.
func (c *redisBalanceCache) Set(ctx context.Context, userID uuid.UUID, points int) error {
	return c.client.Set(ctx, balanceKey(userID), strconv.Itoa(points), balanceCacheTTL).Err()
}

// Invalidate drops the cached balance for a user.
func (c *redisBalanceCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, balanceKey(userID)).Err()
}

func balanceKey(userID uuid.UUID) string {
	return "balance:" + userID.String()
}
