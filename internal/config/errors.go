package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN or images directory,
	// or a negative maximum image size.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key, issuer, or a
	// non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing geocoding API key or base URL.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidNetAddress is returned by [NetAddress.Set] for a malformed
	// -a flag value.
	ErrInvalidNetAddress = errors.New("invalid network address")
)
