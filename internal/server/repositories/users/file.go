package users

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/jsonstore"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/google/uuid"
)

type FileRepository struct {
	col *jsonstore.Collection[models.User]
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{col: jsonstore.New[models.User](dir, "users")}
}

func (r *FileRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.NewString()

	err := r.col.Mutate(func(items []models.User) ([]models.User, error) {
		return append(items, *user), nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *FileRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	items, err := r.col.All()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Username == username {
			u := items[i]
			return &u, nil
		}
	}

	return nil, common.ErrNotFound
}
