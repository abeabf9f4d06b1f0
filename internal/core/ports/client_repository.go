package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// ClientRepository defines persistence for the clients collection.
type ClientRepository interface {
	FindAll(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
}
