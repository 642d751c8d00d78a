package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-fetch/models"
)

// Field names accepted by [TodoValidator.Validate].
const (
	FieldID    = "id"
	FieldLabel = "label"
	FieldOwner = "owner"
)

type TodoValidator struct{}

func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate checks models.Task, models.LabelRequest and models.OwnerList
// values (or pointers to them).
func (v *TodoValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(value, fields...)
	case *models.Task:
		return v.validateTask(*value, fields...)

	case models.LabelRequest:
		return v.validateLabelRequest(value, fields...)
	case *models.LabelRequest:
		return v.validateLabelRequest(*value, fields...)

	case models.OwnerList:
		return v.validateOwner(value, fields...)
	case *models.OwnerList:
		return v.validateOwner(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateTask(task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldLabel}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if task.ID <= 0 {
				return ErrInvalidTaskID
			}
		case FieldLabel:
			if isBlank(task.Label) {
				return ErrEmptyLabel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateLabelRequest(req models.LabelRequest, fields ...string) error {
	for _, f := range fields {
		if f != FieldLabel {
			return ErrUnknownField
		}
	}

	if isBlank(req.Label) {
		return ErrEmptyLabel
	}
	return nil
}

func (v *TodoValidator) validateOwner(owner models.OwnerList, fields ...string) error {
	for _, f := range fields {
		if f != FieldOwner {
			return ErrUnknownField
		}
	}

	if isBlank(owner.Name) {
		return ErrEmptyOwner
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
