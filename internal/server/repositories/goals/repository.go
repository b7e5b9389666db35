// Package goals persists savings targets, scoped per user.
package goals

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/server/models"
)

// Update is the whitelist of fields a caller may change; nil fields keep
// their stored value.
type Update struct {
	Name       *string        `json:"name"`
	Amount     *models.Amount `json:"amount"`
	Saved      *models.Amount `json:"saved"`
	TargetDate *string        `json:"target_date"`
}

type Repository interface {
	List(ctx context.Context, userID string) ([]models.Goal, error)
	Create(ctx context.Context, g *models.Goal) (*models.Goal, error)
	Update(ctx context.Context, id, userID string, upd Update) (*models.Goal, error)
	Delete(ctx context.Context, id, userID string) error
}
