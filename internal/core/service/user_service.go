package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// UserService implements user CRUD. Creation doubles as self-registration:
// an anonymous actor may create an account but always gets the StandardUser
// profile, regardless of what the payload asked for.
type UserService struct {
	repo   ports.UserRepository
	cache  ports.ActorCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ports.ActorCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, actor domain.Actor, input ports.CreateUserInput) (*domain.User, error) {
	switch {
	case input.Name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case input.Email == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case input.Login == "":
		return nil, fmt.Errorf("%w: login is required", domain.ErrValidation)
	case input.Password == "":
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	profile := input.Profile
	if actor.Authenticated() {
		if !actor.CanManageUsers() {
			return nil, domain.ErrForbidden
		}
		if profile == "" {
			profile = domain.ProfileStandardUser
		}
		if !domain.ValidProfile(profile) {
			return nil, fmt.Errorf("%w: unknown profile %q", domain.ErrValidation, profile)
		}
	} else {
		// Self-registration: the supplied profile is ignored.
		profile = domain.ProfileStandardUser
	}

	if err := s.checkUnique(ctx, input.Login, input.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Login:     input.Login,
		Profile:   profile,
		Password:  input.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("login", input.Login).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("login", created.Login).Str("profile", created.Profile).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanUpdateUser(target) {
		return nil, domain.ErrForbidden
	}

	if input.Login != nil && *input.Login != target.Login {
		if err := s.checkLoginFree(ctx, *input.Login); err != nil {
			return nil, err
		}
	}
	if input.Email != nil && *input.Email != target.Email {
		if err := s.checkEmailFree(ctx, *input.Email); err != nil {
			return nil, err
		}
	}

	if err := applyUserPatch(target, actor, input); err != nil {
		return nil, err
	}
	target.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, target); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}
	s.dropCached(ctx, id)

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user updated")
	return target, nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) (*domain.User, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageUsers() {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return nil, err
	}
	s.dropCached(ctx, id)

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user deleted")
	return target, nil
}

// applyUserPatch copies the non-nil patch fields onto target. A
// non-administrator editing their own account keeps the stored profile no
// matter what the payload carries, so privilege can never be self-granted.
func applyUserPatch(target *domain.User, actor domain.Actor, input ports.UpdateUserInput) error {
	if input.Name != nil {
		if *input.Name == "" {
			return fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		target.Name = *input.Name
	}
	if input.Email != nil {
		if *input.Email == "" {
			return fmt.Errorf("%w: email must not be empty", domain.ErrValidation)
		}
		target.Email = *input.Email
	}
	if input.Login != nil {
		if *input.Login == "" {
			return fmt.Errorf("%w: login must not be empty", domain.ErrValidation)
		}
		target.Login = *input.Login
	}
	if input.Password != nil {
		if *input.Password == "" {
			return fmt.Errorf("%w: password must not be empty", domain.ErrValidation)
		}
		target.Password = *input.Password
	}
	if input.Profile != nil && actor.IsAdministrator() {
		if !domain.ValidProfile(*input.Profile) {
			return fmt.Errorf("%w: unknown profile %q", domain.ErrValidation, *input.Profile)
		}
		target.Profile = *input.Profile
	}
	return nil
}

func (s *UserService) checkUnique(ctx context.Context, login, email string) error {
	if err := s.checkLoginFree(ctx, login); err != nil {
		return err
	}
	return s.checkEmailFree(ctx, email)
}

func (s *UserService) checkLoginFree(ctx context.Context, login string) error {
	_, err := s.repo.FindByLogin(ctx, login)
	switch {
	case err == nil:
		return domain.ErrLoginTaken
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (s *UserService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrEmailTaken
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

// dropCached removes a stale actor entry. Cache failures are logged, not
// surfaced: the middleware falls back to the store on a miss anyway.
func (s *UserService) dropCached(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("actor cache invalidation failed")
	}
}
