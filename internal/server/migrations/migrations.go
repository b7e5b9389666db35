// Package migrations embeds the SQL schema migrations for the relational
// backend and applies them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// Up applies all pending migrations. The dialect is "pgx" for the
// production backend; tests run the same schema against sqlite.
func Up(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
