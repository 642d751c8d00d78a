// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the stand-in server
// handlers and middleware.
//
// They are written into the "detail" member of JSON error bodies when the
// underlying error must not be exposed to the caller.
package app

const (
	// MsgInternalServerError replaces the cause of any 5xx response.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for paths no route matches.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when the path exists but the method
	// is not routed.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInvalidGzip is returned when a gzip-encoded request body cannot be
	// read.
	MsgInvalidGzip = "invalid gzip data"
)
