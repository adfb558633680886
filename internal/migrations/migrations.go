package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// Run applies all pending migrations. It is called once at startup, before
// the HTTP server starts accepting requests.
func Run(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(Migrations)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set goose dialect failed: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations failed: %w", err)
	}

	return nil
}
