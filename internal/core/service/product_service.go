package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// ProductService implements product CRUD under the same ownership rules as
// clients. Price and stock are rejected when negative; zero is valid.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, actor domain.Actor, input ports.CreateProductInput) (*domain.Product, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	switch {
	case input.Name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case input.Price < 0:
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	case input.Stock < 0:
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("actor_id", actor.ID).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("actor_id", actor.ID).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, actor domain.Actor, id string, input ports.UpdateProductInput) (*domain.Product, error) {
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
	if input.Description != nil {
		target.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		target.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
		}
		target.Stock = *input.Stock
	}
	target.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, target); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product updated")
	return target, nil
}

func (s *ProductService) Delete(ctx context.Context, actor domain.Actor, id string) (*domain.Product, error) {
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
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product deleted")
	return target, nil
}
