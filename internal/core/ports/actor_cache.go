package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// ActorCache keeps resolved users so the actor middleware does not hit the
// store on every request. Get returns (nil, nil) on a cache miss; cache
// failures are surfaced as errors and treated as misses by callers.
type ActorCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	// Invalidate drops a cached user after an update or delete.
	Invalidate(ctx context.Context, id string) error
}
