package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates negative durations or expirations.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrNoInputFile indicates that no input document path was given.
	ErrNoInputFile = errors.New("no input file provided")
	// ErrInvalidAdapterConfigs indicates missing or malformed endpoints.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty results server address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
