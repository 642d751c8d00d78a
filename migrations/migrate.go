// Package migrations embeds the goose schema migrations of the local
// stand-in server, one directory per SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Goose dialect names accepted by [Migrate].
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration for dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	var dir string
	switch dialect {
	case DialectSQLite:
		dir = "sqlite"
	case DialectPostgres:
		dir = "postgres"
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
