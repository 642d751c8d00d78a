// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-todo-fetch/internal/adapter"
)

// Failure kinds attached to synchronizer log entries.
const (
	kindNetwork         = "network_failure"
	kindUnexpectedShape = "unexpected_shape"
	kindStatus          = "non_success_status"
	kindUnknown         = "unknown"
)

// failureKind classifies an adapter error for diagnostics.
func failureKind(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNetworkFailure):
		return kindNetwork
	case errors.Is(err, adapter.ErrUnexpectedShape):
		return kindUnexpectedShape
	case errors.Is(err, adapter.ErrNonSuccessStatus):
		return kindStatus
	default:
		return kindUnknown
	}
}

func (s *taskListService) logFailure(err error, fn string) *zerolog.Event {
	return s.logger.Err(err).
		Str("func", fn).
		Str("kind", failureKind(err))
}
