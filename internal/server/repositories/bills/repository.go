// Package bills persists payables, scoped per user. Marking a bill paid is
// an Update with the paid field set.
package bills

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/server/models"
)

// Update is the whitelist of fields a caller may change; nil fields keep
// their stored value.
type Update struct {
	Description *string        `json:"description"`
	Amount      *models.Amount `json:"amount"`
	DueDate     *string        `json:"due_date"`
	Paid        *bool          `json:"paid"`
}

type Repository interface {
	List(ctx context.Context, userID string) ([]models.Bill, error)
	Create(ctx context.Context, b *models.Bill) (*models.Bill, error)
	Update(ctx context.Context, id, userID string, upd Update) (*models.Bill, error)
	Delete(ctx context.Context, id, userID string) error
}
