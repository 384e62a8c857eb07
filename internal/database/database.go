// Package database opens the PostgreSQL pool backing the page tree and
// its version history, and applies the embedded goose migrations that
// define that schema. Everything above it works against plain *sql.DB.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

// Connect opens a PostgreSQL connection pool for the given DSN and
// verifies it with a ping before handing it to the stores.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected")
	return db, nil
}

// Migrate brings the page, version, workflow, and notification tables up
// to date by running pending goose migrations. The SQL is embedded at
// compile time so the binary needs no external files, and reruns are
// no-ops, which keeps it safe to call on every startup and in tests.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	slog.Info("database migrations applied")
	return nil
}
