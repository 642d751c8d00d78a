package store

import (
	"context"

	"github.com/MKhiriev/go-todo-fetch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/todo_repository_mock.go -package=mock

// TodoRepository persists the owners and tasks served by the local
// stand-in server.
type TodoRepository interface {
	// CreateOwner registers owner. Returns [ErrOwnerAlreadyExists] if the
	// owner is already stored.
	CreateOwner(ctx context.Context, owner string) error

	// ListTodos returns the tasks of owner in creation order. An unknown
	// owner has no tasks.
	ListTodos(ctx context.Context, owner string) ([]models.Task, error)

	// CreateTodo stores a task for owner, registering the owner on first
	// use, and returns it with its assigned id.
	CreateTodo(ctx context.Context, owner, label string) (models.Task, error)

	// UpdateTodo sets the label of task id. Returns [ErrTodoNotFound] for
	// unknown ids.
	UpdateTodo(ctx context.Context, id int64, label string) (models.Task, error)

	// DeleteTodo removes task id. Returns [ErrTodoNotFound] for unknown ids.
	DeleteTodo(ctx context.Context, id int64) error
}
