package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/migrations"
)

// DB is a *sql.DB bound to one SQL dialect. builder renders squirrel
// statements with the dialect's placeholder format.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// Migrate applies the schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server rather
// than a SQLite file.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open connects to the database addressed by dsn: PostgreSQL for
// postgres:// URLs, a SQLite file otherwise.
func Open(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(dsn) {
		return NewConnectPostgres(ctx, dsn, log)
	}
	return NewConnectSQLite(ctx, dsn, log)
}

func pingOrClose(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return fmt.Errorf("error connecting database (ping): %w", err)
	}
	return nil
}
