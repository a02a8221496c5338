package registry

import (
	"context"
	"fmt"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/domain"
)

// Service handles model descriptor CRUD operations.
type Service struct {
	repo Repository
}

// New creates a registry service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves a model descriptor by name.
func (s *Service) Get(ctx context.Context, name string) (filterdsl.Model, error) {
	if err := domain.ValidateModelName(name); err != nil {
		return filterdsl.Model{}, err
	}
	m, err := s.repo.Get(ctx, name)
	if err != nil {
		return filterdsl.Model{}, fmt.Errorf("get model: %w", err)
	}
	return m, nil
}

// List returns all registered model descriptors.
func (s *Service) List(ctx context.Context) ([]domain.NamedModel, error) {
	models, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return models, nil
}

// Put validates and stores a model descriptor from its wire form.
func (s *Service) Put(ctx context.Context, name string, fields map[string]any) (filterdsl.Model, error) {
	if err := domain.ValidateModelName(name); err != nil {
		return filterdsl.Model{}, err
	}
	m, err := filterdsl.ParseModel(fields)
	if err != nil {
		return filterdsl.Model{}, fmt.Errorf("validate model: %w", err)
	}
	if err := s.repo.Put(ctx, name, m); err != nil {
		return filterdsl.Model{}, fmt.Errorf("put model: %w", err)
	}
	return m, nil
}

// Delete removes a model descriptor.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := domain.ValidateModelName(name); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}
