package goals

import (
	"context"
	"sort"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/jsonstore"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/google/uuid"
)

type FileRepository struct {
	col *jsonstore.Collection[models.Goal]
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{col: jsonstore.New[models.Goal](dir, "goals")}
}

func (r *FileRepository) List(ctx context.Context, userID string) ([]models.Goal, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}

	out := []models.Goal{}
	for _, g := range items {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *FileRepository) Create(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	g.ID = uuid.NewString()

	err := r.col.Mutate(func(items []models.Goal) ([]models.Goal, error) {
		return append(items, *g), nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

func (r *FileRepository) Update(ctx context.Context, id, userID string, upd Update) (*models.Goal, error) {
	var updated *models.Goal

	err := r.col.Mutate(func(items []models.Goal) ([]models.Goal, error) {
		for i := range items {
			if items[i].ID != id || items[i].UserID != userID {
				continue
			}
			if upd.Name != nil {
				items[i].Name = *upd.Name
			}
			if upd.Amount != nil {
				items[i].Amount = *upd.Amount
			}
			if upd.Saved != nil {
				items[i].Saved = *upd.Saved
			}
			if upd.TargetDate != nil {
				items[i].TargetDate = *upd.TargetDate
			}
			g := items[i]
			updated = &g
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
	return r.col.Mutate(func(items []models.Goal) ([]models.Goal, error) {
		for i := range items {
			if items[i].ID == id && items[i].UserID == userID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, common.ErrNotFound
	})
}
