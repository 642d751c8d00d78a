package adapter

import "errors"

// Error taxonomy of the remote list service calls. Every error returned by
// [ServerAdapter] wraps exactly one of these three.
var (
	// ErrNetworkFailure wraps transport-level failures: connection refused,
	// DNS errors, timeouts, context cancellation.
	ErrNetworkFailure = errors.New("network failure")

	// ErrUnexpectedShape is returned when a response body does not decode
	// into the expected structure (e.g. "todos" is not an array, or a
	// created task carries no id).
	ErrUnexpectedShape = errors.New("unexpected response shape")

	// ErrNonSuccessStatus is returned for any non-2xx response. It is
	// additionally wrapped with one of the status sentinels below when the
	// status is a well-known one.
	ErrNonSuccessStatus = errors.New("non-success status")
)

// Status sentinels, wrapped together with [ErrNonSuccessStatus].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
