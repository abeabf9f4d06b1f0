package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// AuthService implements credential verification. Passwords are matched as
// plaintext against the stored value; there is no hashing and no token
// issuance.
type AuthService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, login, password string) (*domain.User, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByCredentials(ctx, login, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Str("login", login).Msg("login rejected")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	s.logger.Info().Str("login", login).Str("profile", user.Profile).Msg("login accepted")
	return user, nil
}
