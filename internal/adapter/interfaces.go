// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the todo client and
// the remote list-management service.
//
// The abstraction is [ServerAdapter], which decouples the synchronizer from
// the wire protocol. The package ships an HTTP/REST implementation built on
// resty ([NewHTTPServerAdapter]).
//
// Every returned error wraps one of [ErrNetworkFailure], [ErrUnexpectedShape]
// or [ErrNonSuccessStatus], so callers can classify failures with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-fetch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// list service. All operations are scoped either by the owner key or by the
// server-assigned task id.
type ServerAdapter interface {
	// GetTasks loads every task of owner in server order. It fails with
	// [ErrUnexpectedShape] unless the response carries a "todos" array.
	GetTasks(ctx context.Context, owner string) ([]models.Task, error)

	// CreateTask creates a task with label for owner and returns the
	// server record, which always carries a non-zero ID.
	CreateTask(ctx context.Context, owner, label string) (models.Task, error)

	// UpdateTask sets the label of task id and returns the updated record.
	UpdateTask(ctx context.Context, id int64, label string) (models.Task, error)

	// DeleteTask deletes task id. Any 2xx status is a success; the response
	// body is ignored.
	DeleteTask(ctx context.Context, id int64) error
}
