package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/models"
)

// todoRepository is the SQL implementation of [TodoRepository]. Queries are
// rendered by squirrel with the placeholder format of the embedded [*DB].
//
// Every method logs through the context-scoped logger so entries carry the
// request trace id.
type todoRepository struct {
	*DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by db.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *todoRepository) CreateOwner(ctx context.Context, owner string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOwnerQuery(r.builder, owner)
	if err != nil {
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrOwnerAlreadyExists
		}
		log.Err(err).Str("func", "todoRepository.CreateOwner").Str("owner", owner).Msg("failed to insert owner")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *todoRepository) ListTodos(ctx context.Context, owner string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnerTodosQuery(r.builder, owner)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.ListTodos").Str("owner", owner).Msg("failed to select todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Task, 0)
	for rows.Next() {
		var todo models.Task
		if err = rows.Scan(&todo.ID, &todo.Label); err != nil {
			log.Err(err).Str("func", "todoRepository.ListTodos").Str("owner", owner).Msg("failed to scan todo")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		todos = append(todos, todo)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "todoRepository.ListTodos").Str("owner", owner).Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *todoRepository) CreateTodo(ctx context.Context, owner, label string) (models.Task, error) {
	log := logger.FromContext(ctx)

	ensureQuery, ensureArgs, err := buildEnsureOwnerQuery(r.builder, owner)
	if err != nil {
		return models.Task{}, err
	}
	insertQuery, insertArgs, err := buildInsertTodoQuery(r.builder, owner, label)
	if err != nil {
		return models.Task{}, err
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.CreateTodo").Msg("failed to begin transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, ensureQuery, ensureArgs...); err != nil {
		log.Err(err).Str("func", "todoRepository.CreateTodo").Str("owner", owner).Msg("failed to ensure owner")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var todo models.Task
	if err = tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&todo.ID, &todo.Label); err != nil {
		log.Err(err).Str("func", "todoRepository.CreateTodo").Str("owner", owner).Msg("failed to insert todo")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "todoRepository.CreateTodo").Msg("failed to commit transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

func (r *todoRepository) UpdateTodo(ctx context.Context, id int64, label string) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTodoQuery(r.builder, id, label)
	if err != nil {
		return models.Task{}, err
	}

	var todo models.Task
	err = r.QueryRowContext(ctx, query, args...).Scan(&todo.ID, &todo.Label)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Task{}, ErrTodoNotFound
	case err != nil:
		log.Err(err).Str("func", "todoRepository.UpdateTodo").Int64("id", id).Msg("failed to update todo")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

func (r *todoRepository) DeleteTodo(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTodoQuery(r.builder, id)
	if err != nil {
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.DeleteTodo").Int64("id", id).Msg("failed to delete todo")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
