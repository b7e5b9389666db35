package bills

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

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Bill, error) {
	query :=
		`SELECT id, user_id, description, amount, due_date, paid
		 FROM bills
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Bill{}
	for rows.Next() {
		var b models.Bill
		if err := rows.Scan(&b.ID, &b.UserID, &b.Description, &b.Amount, &b.DueDate, &b.Paid); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, b *models.Bill) (*models.Bill, error) {

	b.ID = uuid.NewString()

	query :=
		`INSERT INTO bills (id, user_id, description, amount, due_date, paid)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, description, amount, due_date, paid
		 `

	err := r.db.QueryRowContext(ctx, query,
		b.ID, b.UserID, b.Description, b.Amount, b.DueDate, b.Paid).
		Scan(&b.ID, &b.UserID, &b.Description, &b.Amount, &b.DueDate, &b.Paid)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, userID string, upd Update) (*models.Bill, error) {
	query :=
		`UPDATE bills
		 SET description = COALESCE($1, description),
		     amount = COALESCE($2, amount),
		     due_date = COALESCE($3, due_date),
		     paid = COALESCE($4, paid)
		 WHERE id = $5 AND user_id = $6
		 RETURNING id, user_id, description, amount, due_date, paid
		 `

	b := &models.Bill{}
	err := r.db.QueryRowContext(ctx, query,
		upd.Description, upd.Amount, upd.DueDate, upd.Paid, id, userID).
		Scan(&b.ID, &b.UserID, &b.Description, &b.Amount, &b.DueDate, &b.Paid)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM bills WHERE id = $1 AND user_id = $2`

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
