package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-fetch/internal/validators"
	"github.com/MKhiriev/go-todo-fetch/models"
)

// TodoValidationService rejects blank owners, blank labels and non-positive
// ids with [ErrInvalidDataProvided] before delegating to the wrapped service.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{validator: validators.NewTodoValidator()}
}

func (v *TodoValidationService) Wrap(inner TodoService) TodoService {
	v.inner = inner
	return v
}

func (v *TodoValidationService) CreateOwner(ctx context.Context, owner string) error {
	if err := v.validateOwner(ctx, owner); err != nil {
		return err
	}
	return v.inner.CreateOwner(ctx, owner)
}

func (v *TodoValidationService) ListTodos(ctx context.Context, owner string) (models.OwnerList, error) {
	if err := v.validateOwner(ctx, owner); err != nil {
		return models.OwnerList{}, err
	}
	return v.inner.ListTodos(ctx, owner)
}

func (v *TodoValidationService) CreateTodo(ctx context.Context, owner, label string) (models.Task, error) {
	if err := v.validateOwner(ctx, owner); err != nil {
		return models.Task{}, err
	}
	if err := v.validator.Validate(ctx, models.Task{Label: label}, validators.FieldLabel); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateTodo(ctx, owner, label)
}

func (v *TodoValidationService) UpdateTodo(ctx context.Context, id int64, label string) (models.Task, error) {
	if err := v.validator.Validate(ctx, models.Task{ID: id, Label: label}); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateTodo(ctx, id, label)
}

func (v *TodoValidationService) DeleteTodo(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Task{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteTodo(ctx, id)
}

func (v *TodoValidationService) validateOwner(ctx context.Context, owner string) error {
	if err := v.validator.Validate(ctx, models.OwnerList{Name: owner}, validators.FieldOwner); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
