package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// ClientService implements client CRUD with ownership-gated mutation:
// any authenticated actor may create and read, only the creator or an
// administrator may update or delete.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	// No ownership filtering: every authenticated actor sees all records.
	return s.repo.FindAll(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, actor domain.Actor, input ports.CreateClientInput) (*domain.Client, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Str("actor_id", actor.ID).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Str("actor_id", actor.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutateOwned(target.CreatedBy) {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		target.Name = *input.Name
	}
	if input.Email != nil {
		target.Email = *input.Email
	}
	if input.Phone != nil {
		target.Phone = *input.Phone
	}
	if input.Address != nil {
		target.Address = *input.Address
	}
	target.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, target); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to update client")
		return nil, err
	}

	s.logger.Info().Str("client_id", id).Str("actor_id", actor.ID).Msg("client updated")
	return target, nil
}

func (s *ClientService) Delete(ctx context.Context, actor domain.Actor, id string) (*domain.Client, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanMutateOwned(target.CreatedBy) {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to delete client")
		return nil, err
	}

	s.logger.Info().Str("client_id", id).Str("actor_id", actor.ID).Msg("client deleted")
	return target, nil
}
