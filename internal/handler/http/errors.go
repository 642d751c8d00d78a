// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidTodoID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidTodoID = errors.New("todo id must be a positive integer")
)
