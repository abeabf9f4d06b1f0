package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// UserRepository defines persistence for the users collection.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByCredentials performs the exact login+password match used by the
	// login endpoint. Passwords are plaintext in this system.
	FindByCredentials(ctx context.Context, login, password string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
