package transactions

import (
	"context"
	"sort"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/jsonstore"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/google/uuid"
)

type FileRepository struct {
	col *jsonstore.Collection[models.Transaction]
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{col: jsonstore.New[models.Transaction](dir, "transactions")}
}

func (r *FileRepository) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}

	out := []models.Transaction{}
	for _, t := range items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *FileRepository) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	t.ID = uuid.NewString()

	err := r.col.Mutate(func(items []models.Transaction) ([]models.Transaction, error) {
		return append(items, *t), nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *FileRepository) Update(ctx context.Context, id, userID string, upd Update) (*models.Transaction, error) {
	var updated *models.Transaction

	err := r.col.Mutate(func(items []models.Transaction) ([]models.Transaction, error) {
		for i := range items {
			if items[i].ID != id || items[i].UserID != userID {
				continue
			}
			if upd.Date != nil {
				items[i].Date = *upd.Date
			}
			if upd.Description != nil {
				items[i].Description = *upd.Description
			}
			if upd.Category != nil {
				items[i].Category = *upd.Category
			}
			if upd.Type != nil {
				items[i].Type = *upd.Type
			}
			if upd.Amount != nil {
				items[i].Amount = *upd.Amount
			}
			t := items[i]
			updated = &t
			return items, nil
		}
		return nil, common.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *FileRepository) Delete(ctx context.Context, id, userID string) error {
	return r.col.Mutate(func(items []models.Transaction) ([]models.Transaction, error) {
		for i := range items {
			if items[i].ID == id && items[i].UserID == userID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, common.ErrNotFound
	})
}
