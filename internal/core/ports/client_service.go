package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// CreateClientInput carries the fields accepted when creating a client.
// CreatedBy is derived from the actor, never from the payload.
type CreateClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateClientInput is a partial update: nil fields are left untouched.
type UpdateClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, actor domain.Actor, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, actor domain.Actor, id string) (*domain.Client, error)
}
