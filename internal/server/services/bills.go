package services

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/bills"
)

type BillService struct {
	repo bills.Repository
}

func NewBillService(repo bills.Repository) *BillService {
	return &BillService{repo: repo}
}

func (s *BillService) List(ctx context.Context, userID string) ([]models.Bill, error) {
	return s.repo.List(ctx, userID)
}

// Create stores a bill; paid starts false unless the caller says otherwise.
func (s *BillService) Create(ctx context.Context, userID string, b *models.Bill) (*models.Bill, error) {
	if b.Description == "" {
		return nil, fmt.Errorf("%w: description is required", common.ErrValidation)
	}

	b.UserID = userID
	return s.repo.Create(ctx, b)
}

func (s *BillService) Update(ctx context.Context, id, userID string, upd bills.Update) (*models.Bill, error) {
	return s.repo.Update(ctx, id, userID, upd)
}

func (s *BillService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
