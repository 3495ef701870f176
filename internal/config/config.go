// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container of
// go-story-keeper. It is populated by merging command-line flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote story API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Proxy holds the local caching proxy settings.
	Proxy Proxy `envPrefix:"PROXY_"`

	// Push holds push-subscription settings.
	Push Push `envPrefix:"PUSH_"`

	// Notifications holds notification delivery settings.
	Notifications Notifications `envPrefix:"NOTIFICATIONS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration.
type App struct {
	// Version is the application version reported by /sw/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the client log file path. Empty means next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds configuration of the remote story API client.
type Adapter struct {
	// BaseURL is the API root, e.g. "https://story-api.dicoding.dev/v1".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxPhotoSize is the largest accepted photo in bytes.
	// Env: ADAPTER_MAX_PHOTO_SIZE
	MaxPhotoSize int64 `env:"MAX_PHOTO_SIZE"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// CacheBackend selects where cached responses live: "sqlite" or "memory".
	// Env: STORAGE_CACHE_BACKEND
	CacheBackend string `env:"CACHE_BACKEND"`
}

// DB holds the local SQLite database settings.
type DB struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is the period of the offline-story flush job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SyncPause is the minimum gap between two queued submissions.
	// Env: WORKERS_SYNC_PAUSE
	SyncPause time.Duration `env:"SYNC_PAUSE"`

	// EventBuffer is the capacity of the worker event queue.
	// Env: WORKERS_EVENT_BUFFER
	EventBuffer int `env:"EVENT_BUFFER"`
}

// Proxy holds settings of the local caching proxy.
type Proxy struct {
	// Address is the listen address in host:port form.
	// Env: PROXY_ADDRESS
	Address string `env:"ADDRESS"`

	// ShellOrigin is the origin the application shell is fetched from.
	// Env: PROXY_SHELL_ORIGIN
	ShellOrigin string `env:"SHELL_ORIGIN"`

	// CacheVersion is the current shell cache name.
	// Env: PROXY_CACHE_VERSION
	CacheVersion string `env:"CACHE_VERSION"`

	// Manifest lists the shell URLs fetched on install. Relative entries
	// resolve against ShellOrigin.
	// Env: PROXY_MANIFEST (comma separated)
	Manifest []string `env:"MANIFEST" envSeparator:","`
}

// Push holds push-subscription settings.
type Push struct {
	// VAPIDPublicKey is the application server key, base64url encoded.
	// Env: PUSH_VAPID_PUBLIC_KEY
	VAPIDPublicKey string `env:"VAPID_PUBLIC_KEY"`

	// ReceiverURL is the externally reachable base of the push receiver.
	// Empty means "http://" + Proxy.Address.
	// Env: PUSH_RECEIVER_URL
	ReceiverURL string `env:"RECEIVER_URL"`
}

// Notifications holds notification delivery settings.
type Notifications struct {
	// URLs are shoutrrr service URLs notifications are forwarded to.
	// Env: NOTIFICATIONS_URLS (comma separated)
	URLs []string `env:"URLS" envSeparator:","`
}

// GetStructuredConfig loads and merges the configuration. Sources are
// consulted in the following priority order (first non-zero value wins):
//  1. Command-line flags bound with [BindFlags]
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
