// Package cache holds the Redis-backed role cache.
//
// The resolved role of a profile is needed on every protected request. The
// cache keeps a short-TTL entry per profile so navigation does not re-read
// the profiles table; sign-out invalidates the entry explicitly, and the TTL
// bounds how long a stale role can ever be served.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrMiss is returned when no entry exists for the profile.
var ErrMiss = errors.New("role cache miss")

// Entry is what gets cached per profile.
type Entry struct {
	Role      models.Role `msgpack:"role"`
	CompanyID *uuid.UUID  `msgpack:"company_id"`
}

// RoleCache stores resolved roles in Redis with a TTL.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache creates a RoleCache. Entries live for ttl unless invalidated.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{client: client, ttl: ttl}
}

func roleKey(profileID uuid.UUID) string {
	return "role:" + profileID.String()
}

// Get returns the cached entry for a profile, or ErrMiss.
func (c *RoleCache) Get(ctx context.Context, profileID uuid.UUID) (*Entry, error) {
	data, err := c.client.Get(ctx, roleKey(profileID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read role cache: %w", err)
	}

	var entry Entry
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		// A corrupt entry behaves like a miss; the caller re-resolves and overwrites it.
		return nil, ErrMiss
	}

	return &entry, nil
}

// Set stores the resolved role for a profile.
func (c *RoleCache) Set(ctx context.Context, profileID uuid.UUID, entry *Entry) error {
	data, err := msgpack.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode role cache entry: %w", err)
	}

	if err := c.client.Set(ctx, roleKey(profileID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write role cache: %w", err)
	}

	return nil
}

// Invalidate removes the cached role, called at sign-out.
func (c *RoleCache) Invalidate(ctx context.Context, profileID uuid.UUID) error {
	if err := c.client.Del(ctx, roleKey(profileID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate role cache: %w", err)
	}
	return nil
}
