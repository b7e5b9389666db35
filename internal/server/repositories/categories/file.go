package categories

import (
	"context"
	"sort"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/jsonstore"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/google/uuid"
)

type FileRepository struct {
	col *jsonstore.Collection[models.Category]
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{col: jsonstore.New[models.Category](dir, "categories")}
}

func (r *FileRepository) List(ctx context.Context, userID string) ([]models.Category, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}

	out := []models.Category{}
	for _, c := range items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *FileRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	c.ID = uuid.NewString()

	err := r.col.Mutate(func(items []models.Category) ([]models.Category, error) {
		return append(items, *c), nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// CreateIfAbsent checks for the name under the collection lock, so two
// concurrent seeders of the same name cannot both insert.
func (r *FileRepository) CreateIfAbsent(ctx context.Context, c *models.Category) error {
	c.ID = uuid.NewString()

	return r.col.Mutate(func(items []models.Category) ([]models.Category, error) {
		for i := range items {
			if items[i].UserID == c.UserID && items[i].Name == c.Name {
				return items, nil
			}
		}
		return append(items, *c), nil
	})
}

func (r *FileRepository) DeleteByName(ctx context.Context, name, userID string) error {
	return r.col.Mutate(func(items []models.Category) ([]models.Category, error) {
		for i := range items {
			if items[i].Name == name && items[i].UserID == userID {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, common.ErrNotFound
	})
}
