package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// UpdateProductInput is a partial update: nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, actor domain.Actor, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor domain.Actor, id string) (*domain.Product, error)
}
