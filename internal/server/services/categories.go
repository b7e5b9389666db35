package services

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/categories"
)

// DefaultCategories are seeded for every user on their first listing.
var DefaultCategories = []string{"Alimentação", "Transporte"}

type CategoryService struct {
	repo categories.Repository
}

func NewCategoryService(repo categories.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns the user's categories, seeding the defaults first when the
// user has none yet. Seeding goes through CreateIfAbsent, so a second List
// racing the first cannot duplicate the defaults.
func (s *CategoryService) List(ctx context.Context, userID string) ([]models.Category, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	for _, name := range DefaultCategories {
		if err := s.repo.CreateIfAbsent(ctx, &models.Category{UserID: userID, Name: name}); err != nil {
			return nil, err
		}
	}

	return s.repo.List(ctx, userID)
}

// Create adds a category, rejecting a duplicate name for the same user.
func (s *CategoryService) Create(ctx context.Context, userID, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	existing, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.Name == name {
			return nil, fmt.Errorf("%w: category %q", common.ErrConflict, name)
		}
	}

	return s.repo.Create(ctx, &models.Category{UserID: userID, Name: name})
}

// Delete removes a category by name, the only handle the caller has.
func (s *CategoryService) Delete(ctx context.Context, userID, name string) error {
	return s.repo.DeleteByName(ctx, name, userID)
}
