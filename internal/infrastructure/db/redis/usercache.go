package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Thor-asgardian/FullStack/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// UserCache is a short-TTL read cache for user records, keyed by user
// id. Records never mutate in this core, so staleness only matters for
// deletions, which are out of scope; the TTL bounds it regardless.
// Key format: user:<id>
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached user, or (nil, nil) on a cache miss.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &user, nil
}

// Set stores the user record for cacheTTL. The entity's json tags
// exclude the password hash, so the cache only ever holds the public
// projection.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, cacheTTL).Err()
}

func (c *UserCache) key(id string) string {
	return "user:" + id
}
