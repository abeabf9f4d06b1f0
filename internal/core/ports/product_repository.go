package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// ProductRepository defines persistence for the products collection.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}
