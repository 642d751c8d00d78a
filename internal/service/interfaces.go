package service

import (
	"context"

	"github.com/MKhiriev/go-todo-fetch/models"
)

// TodoService is the server-side business layer behind the list REST API.
type TodoService interface {
	CreateOwner(ctx context.Context, owner string) error
	ListTodos(ctx context.Context, owner string) (models.OwnerList, error)
	CreateTodo(ctx context.Context, owner, label string) (models.Task, error)
	UpdateTodo(ctx context.Context, id int64, label string) (models.Task, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// AppInfoService reports static facts about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TodoServiceWrapper decorates a TodoService with extra behavior such as
// input validation.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}
