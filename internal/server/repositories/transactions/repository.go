// Package transactions persists income/expense movements. Every operation
// is scoped to the owning user: a record another user owns is
// indistinguishable from one that does not exist.
package transactions

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/server/models"
)

// Update is the whitelist of fields a caller may change. Nil fields keep
// their stored value; id and user_id are not part of the whitelist and can
// never be overwritten.
type Update struct {
	Date        *string        `json:"date"`
	Description *string        `json:"description"`
	Category    *string        `json:"category"`
	Type        *string        `json:"type"`
	Amount      *models.Amount `json:"amount"`
}

type Repository interface {
	// List returns the user's transactions ordered by id.
	List(ctx context.Context, userID string) ([]models.Transaction, error)

	// Create stores t under a freshly generated id, stamping the user id
	// already set on t, and returns the stored record.
	Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error)

	// Update merges upd onto the record matching (id, userID) and returns
	// the post-merge record, or common.ErrNotFound when no record matches
	// both.
	Update(ctx context.Context, id, userID string, upd Update) (*models.Transaction, error)

	// Delete removes the record matching (id, userID); common.ErrNotFound
	// when nothing matched.
	Delete(ctx context.Context, id, userID string) error
}
