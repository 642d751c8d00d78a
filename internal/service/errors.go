package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrOwnerAlreadyExists  = errors.New("owner already exists")
	ErrTodoNotFound        = errors.New("todo not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
