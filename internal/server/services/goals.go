package services

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/goals"
)

type GoalService struct {
	repo goals.Repository
}

func NewGoalService(repo goals.Repository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) List(ctx context.Context, userID string) ([]models.Goal, error) {
	return s.repo.List(ctx, userID)
}

// Create stores a goal; saved starts at whatever the caller sent, zero by
// default.
func (s *GoalService) Create(ctx context.Context, userID string, g *models.Goal) (*models.Goal, error) {
	if g.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	g.UserID = userID
	return s.repo.Create(ctx, g)
}

func (s *GoalService) Update(ctx context.Context, id, userID string, upd goals.Update) (*models.Goal, error) {
	return s.repo.Update(ctx, id, userID, upd)
}

func (s *GoalService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
