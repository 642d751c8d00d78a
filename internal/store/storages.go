package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/config"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
)

// Storages groups the server-side repositories and owns their connection.
type Storages struct {
	TodoRepository TodoRepository

	db *DB
}

// NewStorages connects to cfg.DB.DSN, runs pending migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Open(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		TodoRepository: NewTodoRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
