package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a user. An empty
// Profile defaults to StandardUser; anonymous registration forces it.
type CreateUserInput struct {
	Name     string
	Email    string
	Login    string
	Password string
	Profile  string
}

// UpdateUserInput is a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Login    *string
	Password *string
	Profile  *string
}

// UserService defines use-case operations for users. Every mutating call
// takes the acting identity explicitly; there is no ambient current user.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, actor domain.Actor, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor domain.Actor, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Actor, id string) (*domain.User, error)
}
