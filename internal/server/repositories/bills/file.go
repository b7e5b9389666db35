package bills

import (
	"context"
	"sort"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/jsonstore"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/google/uuid"
)

type FileRepository struct {
	col *jsonstore.Collection[models.Bill]
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{col: jsonstore.New[models.Bill](dir, "bills")}
}

func (r *FileRepository) List(ctx context.Context, userID string) ([]models.Bill, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}

	out := []models.Bill{}
	for _, b := range items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *FileRepository) Create(ctx context.Context, b *models.Bill) (*models.Bill, error) {
	b.ID = uuid.NewString()

	err := r.col.Mutate(func(items []models.Bill) ([]models.Bill, error) {
		return append(items, *b), nil
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (r *FileRepository) Update(ctx context.Context, id, userID string, upd Update) (*models.Bill, error) {
	var updated *models.Bill

	err := r.col.Mutate(func(items []models.Bill) ([]models.Bill, error) {
		for i := range items {
			if items[i].ID != id || items[i].UserID != userID {
				continue
			}
			if upd.Description != nil {
				items[i].Description = *upd.Description
			}
			if upd.Amount != nil {
				items[i].Amount = *upd.Amount
			}
			if upd.DueDate != nil {
				items[i].DueDate = *upd.DueDate
			}
			if upd.Paid != nil {
				items[i].Paid = *upd.Paid
			}
			b := items[i]
			updated = &b
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
	return r.col.Mutate(func(items []models.Bill) ([]models.Bill, error) {
		for i := range items {
			if items[i].ID == id && items[i].UserID == userID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, common.ErrNotFound
	})
}
