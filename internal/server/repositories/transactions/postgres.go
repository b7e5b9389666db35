package transactions

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	query :=
		`SELECT id, user_id, date, description, category, type, amount
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Date, &t.Description, &t.Category, &t.Type, &t.Amount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {

	t.ID = uuid.NewString()

	query :=
		`INSERT INTO transactions (id, user_id, date, description, category, type, amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, date, description, category, type, amount
		 `

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.UserID, t.Date, t.Description, t.Category, t.Type, t.Amount).
		Scan(&t.ID, &t.UserID, &t.Date, &t.Description, &t.Category, &t.Type, &t.Amount)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, userID string, upd Update) (*models.Transaction, error) {
	query :=
		`UPDATE transactions
		 SET date = COALESCE($1, date),
		     description = COALESCE($2, description),
		     category = COALESCE($3, category),
		     type = COALESCE($4, type),
		     amount = COALESCE($5, amount)
		 WHERE id = $6 AND user_id = $7
		 RETURNING id, user_id, date, description, category, type, amount
		 `

	t := &models.Transaction{}
	err := r.db.QueryRowContext(ctx, query,
		upd.Date, upd.Description, upd.Category, upd.Type, upd.Amount, id, userID).
		Scan(&t.ID, &t.UserID, &t.Date, &t.Description, &t.Category, &t.Type, &t.Amount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
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
