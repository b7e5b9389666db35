// Package categories persists user-managed transaction labels. Names are
// unique per user; deletion is keyed by name because that is all the
// caller knows.
package categories

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/server/models"
)

type Repository interface {
	// List returns the user's categories ordered by name.
	List(ctx context.Context, userID string) ([]models.Category, error)

	// Create stores c under a freshly generated id and returns the stored
	// record. The per-user name uniqueness check lives in the service
	// layer.
	Create(ctx context.Context, c *models.Category) (*models.Category, error)

	// CreateIfAbsent stores c unless the user already has a category of
	// that name. Used for idempotent default seeding: calling it twice for
	// the same name never duplicates.
	CreateIfAbsent(ctx context.Context, c *models.Category) error

	// DeleteByName removes the user's category with the given name;
	// common.ErrNotFound when the user has no such category.
	DeleteByName(ctx context.Context, name, userID string) error
}
