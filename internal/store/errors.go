// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Client list state errors returned by [TaskListStore].
var (
	// ErrIndexOutOfRange is returned when a display position does not
	// address an item of the current list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTaskNotFound is returned when no task with the given id is present
	// in the local list any more.
	ErrTaskNotFound = errors.New("task not found")
)

// Repository errors returned by the SQL-backed [TodoRepository].
// Callers should use [errors.Is] to match against these values.
var (
	// ErrOwnerAlreadyExists is returned when an owner is created twice.
	ErrOwnerAlreadyExists = errors.New("owner already exists")

	// ErrOwnerNotFound is returned when an owner-scoped lookup matches no
	// owner row.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrTodoNotFound is returned when an update or delete targets an id
	// that is not stored.
	ErrTodoNotFound = errors.New("todo not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan todo row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan todo rows")
)
