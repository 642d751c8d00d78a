package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
	"github.com/MKhiriev/go-todo-fetch/models"
)

type todoService struct {
	repo   store.TodoRepository
	logger *logger.Logger
}

func NewTodoService(repo store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{repo: repo, logger: logger}
}

func (s *todoService) CreateOwner(ctx context.Context, owner string) error {
	err := s.repo.CreateOwner(ctx, owner)
	if errors.Is(err, store.ErrOwnerAlreadyExists) {
		return fmt.Errorf("%w: %s", ErrOwnerAlreadyExists, owner)
	}
	if err != nil {
		return fmt.Errorf("create owner: %w", err)
	}
	return nil
}

func (s *todoService) ListTodos(ctx context.Context, owner string) (models.OwnerList, error) {
	todos, err := s.repo.ListTodos(ctx, owner)
	if err != nil {
		return models.OwnerList{}, fmt.Errorf("list todos: %w", err)
	}
	return models.OwnerList{Name: owner, Todos: todos}, nil
}

func (s *todoService) CreateTodo(ctx context.Context, owner, label string) (models.Task, error) {
	todo, err := s.repo.CreateTodo(ctx, owner, label)
	if err != nil {
		return models.Task{}, fmt.Errorf("create todo: %w", err)
	}
	logger.FromContext(ctx).Debug().Str("owner", owner).Int64("id", todo.ID).Msg("todo created")
	return todo, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id int64, label string) (models.Task, error) {
	todo, err := s.repo.UpdateTodo(ctx, id, label)
	if errors.Is(err, store.ErrTodoNotFound) {
		return models.Task{}, fmt.Errorf("%w: %d", ErrTodoNotFound, id)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id int64) error {
	err := s.repo.DeleteTodo(ctx, id)
	if errors.Is(err, store.ErrTodoNotFound) {
		return fmt.Errorf("%w: %d", ErrTodoNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
