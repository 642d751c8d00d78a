// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules shared by the todo client and the
// local stand-in server.
//
// The only rule the list service imposes is non-emptiness: labels and owner
// keys must contain at least one non-whitespace character, and task ids are
// positive.
package validators

import "context"

// Validator validates arbitrary input values. When fields are given, only
// those named fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
