package categories

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/dbx"
	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Category, error) {
	query :=
		`SELECT id, user_id, name
		 FROM categories
		 WHERE user_id = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {

	c.ID = uuid.NewString()

	query :=
		`INSERT INTO categories (id, user_id, name)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, name
		 `

	err := r.db.QueryRowContext(ctx, query, c.ID, c.UserID, c.Name).
		Scan(&c.ID, &c.UserID, &c.Name)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

// CreateIfAbsent relies on the UNIQUE (user_id, name) constraint, so two
// concurrent seeders of the same name cannot both insert.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, c *models.Category) error {

	c.ID = uuid.NewString()

	query :=
		`INSERT INTO categories (id, user_id, name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, name) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteByName(ctx context.Context, name, userID string) error {
	query := `DELETE FROM categories WHERE name = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, name, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}
