package collections

import (
	"context"
	"fmt"
	"strings"

	"github.com/ensigotrace/ensigotrace-backend/pkg/errors"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
)

// Service enforces the form-level rules before touching the repository.
type Service interface {
	GetAllCollections(ctx context.Context) ([]models.SeedCollection, error)
	AddCollection(ctx context.Context, input CreateCollectionInput) (models.SeedCollection, error)
	UpdateCollection(ctx context.Context, id string, updates UpdateCollectionInput) (models.SeedCollection, error)
	DeleteCollection(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService wraps the repository with validation.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("collections repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetAllCollections(ctx context.Context) ([]models.SeedCollection, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) AddCollection(ctx context.Context, input CreateCollectionInput) (models.SeedCollection, error) {
	if strings.TrimSpace(input.MotherTree) == "" {
		return models.SeedCollection{}, errors.New(errors.CodeValidation, "Mother tree name is required")
	}
	if input.Quantity <= 0 {
		return models.SeedCollection{}, errors.New(errors.CodeValidation, "Quantity must be greater than 0")
	}
	return s.repo.Create(ctx, input)
}

// UpdateCollection re-checks quantity only when the update supplies one.
func (s *service) UpdateCollection(ctx context.Context, id string, updates UpdateCollectionInput) (models.SeedCollection, error) {
	if updates.Quantity != nil && *updates.Quantity <= 0 {
		return models.SeedCollection{}, errors.New(errors.CodeValidation, "Quantity must be greater than 0")
	}
	updated, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return models.SeedCollection{}, err
	}
	if updated == nil {
		return models.SeedCollection{}, errors.New(errors.CodeNotFound, "Collection not found")
	}
	return *updated, nil
}

func (s *service) DeleteCollection(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.New(errors.CodeNotFound, "Collection not found")
	}
	return nil
}
