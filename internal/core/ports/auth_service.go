package ports

import (
	"context"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

// AuthService verifies credentials against the users collection.
type AuthService interface {
	Login(ctx context.Context, login, password string) (*domain.User, error)
}
