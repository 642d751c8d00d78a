package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel    = errors.New("label is required")
	ErrEmptyOwner    = errors.New("owner is required")
	ErrInvalidTaskID = errors.New("invalid task id")
)
