package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

const defaultActorTTL = 5 * time.Minute

// ActorCache stores resolved users so the actor middleware can skip the
// users collection on repeat requests.
// Key format: actor:<user_id>
type ActorCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewActorCache creates an ActorCache wrapping the given Redis client.
// If ttl <= 0, defaultActorTTL is used.
func NewActorCache(client *redis.Client, ttl time.Duration) *ActorCache {
	if ttl <= 0 {
		ttl = defaultActorTTL
	}
	return &ActorCache{client: client, ttl: ttl}
}

type cachedUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Login   string `json:"login"`
	Profile string `json:"profile"`
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *ActorCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("actor cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("actor cache decode: %w", err)
	}
	return &domain.User{
		ID:      cu.ID,
		Name:    cu.Name,
		Email:   cu.Email,
		Login:   cu.Login,
		Profile: cu.Profile,
	}, nil
}

// Set records the user until the TTL expires. The password is never cached.
func (c *ActorCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedUser{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Login:   user.Login,
		Profile: user.Profile,
	})
	if err != nil {
		return fmt.Errorf("actor cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, c.ttl).Err()
}

// Invalidate drops the entry so updates and deletes take effect immediately
// instead of after TTL expiry.
func (c *ActorCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ActorCache) key(id string) string {
	return "actor:" + id
}
