package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates invalid client behaviour settings
	// (empty owner or unknown delete failure policy).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (missing address or negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (negative reload interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
