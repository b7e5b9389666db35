package services

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/transactions"
)

type TransactionService struct {
	repo transactions.Repository
}

func NewTransactionService(repo transactions.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (s *TransactionService) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.repo.List(ctx, userID)
}

func (s *TransactionService) Create(ctx context.Context, userID string, t *models.Transaction) (*models.Transaction, error) {
	if t.Date == "" {
		return nil, fmt.Errorf("%w: date is required", common.ErrValidation)
	}
	if t.Description == "" {
		return nil, fmt.Errorf("%w: description is required", common.ErrValidation)
	}

	t.UserID = userID
	return s.repo.Create(ctx, t)
}

func (s *TransactionService) Update(ctx context.Context, id, userID string, upd transactions.Update) (*models.Transaction, error) {
	return s.repo.Update(ctx, id, userID, upd)
}

func (s *TransactionService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
