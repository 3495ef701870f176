package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid API client settings
	// (for example, a relative base URL or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidProxyConfigs indicates invalid caching proxy settings.
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
	// ErrInvalidPushConfigs indicates invalid push settings.
	ErrInvalidPushConfigs = errors.New("invalid push configuration")
)
