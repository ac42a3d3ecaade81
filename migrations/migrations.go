// Package migrations embeds the SQL schema for every persistent storage
// driver and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Dialect names the schema variant to apply.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// FS returns the migration files for the dialect.
func FS(d Dialect) (fs.FS, error) {
	switch d {
	case Postgres, SQLite:
		return fs.Sub(embedded, string(d))
	}
	return nil, fmt.Errorf("migrations: unknown dialect %q", d)
}

// NewProvider returns a goose provider over the embedded files for the dialect.
func NewProvider(db *sql.DB, d Dialect) (*goose.Provider, error) {
	fsys, err := FS(d)
	if err != nil {
		return nil, err
	}

	gooseDialect := goose.DialectPostgres
	if d == SQLite {
		gooseDialect = goose.DialectSQLite3
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migrations: new provider: %w", err)
	}
	return provider, nil
}

// Up applies all pending migrations and returns how many were applied.
func Up(ctx context.Context, db *sql.DB, d Dialect) (int, error) {
	provider, err := NewProvider(db, d)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations: up: %w", err)
	}
	return len(results), nil
}
