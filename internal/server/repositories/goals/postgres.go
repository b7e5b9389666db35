package goals

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

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Goal, error) {
	query :=
		`SELECT id, user_id, name, amount, saved, target_date
		 FROM goals
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.Amount, &g.Saved, &g.TargetDate); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, g *models.Goal) (*models.Goal, error) {

	g.ID = uuid.NewString()

	query :=
		`INSERT INTO goals (id, user_id, name, amount, saved, target_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, name, amount, saved, target_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		g.ID, g.UserID, g.Name, g.Amount, g.Saved, g.TargetDate).
		Scan(&g.ID, &g.UserID, &g.Name, &g.Amount, &g.Saved, &g.TargetDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return g, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, userID string, upd Update) (*models.Goal, error) {
	query :=
		`UPDATE goals
		 SET name = COALESCE($1, name),
		     amount = COALESCE($2, amount),
		     saved = COALESCE($3, saved),
		     target_date = COALESCE($4, target_date)
		 WHERE id = $5 AND user_id = $6
		 RETURNING id, user_id, name, amount, saved, target_date
		 `

	g := &models.Goal{}
	err := r.db.QueryRowContext(ctx, query,
		upd.Name, upd.Amount, upd.Saved, upd.TargetDate, id, userID).
		Scan(&g.ID, &g.UserID, &g.Name, &g.Amount, &g.Saved, &g.TargetDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return g, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`

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
