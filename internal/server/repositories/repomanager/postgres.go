package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/server/migrations"
	"github.com/fintrackhq/fintrack/internal/server/repositories/bills"
	"github.com/fintrackhq/fintrack/internal/server/repositories/categories"
	"github.com/fintrackhq/fintrack/internal/server/repositories/goals"
	"github.com/fintrackhq/fintrack/internal/server/repositories/transactions"
	"github.com/fintrackhq/fintrack/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresManager vends PostgreSQL-backed repositories over one shared
// connection pool.
type PostgresManager struct {
	db           *sql.DB
	users        users.Repository
	transactions transactions.Repository
	goals        goals.Repository
	bills        bills.Repository
	categories   categories.Repository
}

// NewPostgresManager opens the pool, verifies connectivity and applies the
// embedded schema migrations. Any failure here is a startup failure: the
// caller must abort rather than serve with a half-initialized store.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := migrations.Up(ctx, db, "pgx"); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &PostgresManager{
		db:           db,
		users:        users.NewPostgresRepository(db),
		transactions: transactions.NewPostgresRepository(db),
		goals:        goals.NewPostgresRepository(db),
		bills:        bills.NewPostgresRepository(db),
		categories:   categories.NewPostgresRepository(db),
	}, nil
}

func (m *PostgresManager) Users() users.Repository               { return m.users }
func (m *PostgresManager) Transactions() transactions.Repository { return m.transactions }
func (m *PostgresManager) Goals() goals.Repository               { return m.goals }
func (m *PostgresManager) Bills() bills.Repository               { return m.bills }
func (m *PostgresManager) Categories() categories.Repository     { return m.categories }

func (m *PostgresManager) Close() error { return m.db.Close() }
