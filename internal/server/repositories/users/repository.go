// Package users persists account records. Usernames are unique; the
// uniqueness check lives in the auth service, with the relational schema
// carrying a UNIQUE constraint as a backstop.
package users

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/server/models"
)

type Repository interface {
	// Create stores the user under a freshly generated id and returns the
	// stored record.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername performs an exact-match lookup, returning
	// common.ErrNotFound when no such account exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
