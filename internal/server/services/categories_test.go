package services

import (
	"context"
	"testing"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/server/repositories/categories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_ListSeedsDefaults(t *testing.T) {
	s := NewCategoryService(categories.NewFileRepository(t.TempDir()))
	ctx := context.Background()

	got, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, len(DefaultCategories))
	assert.Equal(t, "Alimentação", got[0].Name)
	assert.Equal(t, "Transporte", got[1].Name)
	for _, c := range got {
		assert.Equal(t, "u1", c.UserID)
		assert.NotEmpty(t, c.ID)
	}

	// a second listing must not seed again
	again, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, again, len(DefaultCategories))

	// each user gets their own defaults
	other, err := s.List(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, other, len(DefaultCategories))
	assert.NotEqual(t, got[0].ID, other[0].ID)
}

func TestCategoryService_Create(t *testing.T) {
	s := NewCategoryService(categories.NewFileRepository(t.TempDir()))
	ctx := context.Background()

	created, err := s.Create(ctx, "u1", "Lazer")
	require.NoError(t, err)
	assert.Equal(t, "Lazer", created.Name)
	assert.Equal(t, "u1", created.UserID)

	_, err = s.Create(ctx, "u1", "Lazer")
	assert.ErrorIs(t, err, common.ErrConflict)

	// same name under another user is fine
	_, err = s.Create(ctx, "u2", "Lazer")
	assert.NoError(t, err)

	_, err = s.Create(ctx, "u1", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCategoryService_Delete(t *testing.T) {
	s := NewCategoryService(categories.NewFileRepository(t.TempDir()))
	ctx := context.Background()

	_, err := s.Create(ctx, "u1", "Lazer")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "u1", "Lazer"))
	assert.ErrorIs(t, s.Delete(ctx, "u1", "Lazer"), common.ErrNotFound)
}
