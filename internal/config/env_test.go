// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":  "1.2.3",
		"APP_LOG_FILE": "/var/log/story.log",

		"ADAPTER_BASE_URL":        "https://api.example/v1",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_MAX_PHOTO_SIZE":  "1024",

		"STORAGE_DB_DSN":        "/data/story.db",
		"STORAGE_CACHE_BACKEND": "memory",

		"WORKERS_SYNC_INTERVAL": "2m",
		"WORKERS_SYNC_PAUSE":    "250ms",
		"WORKERS_EVENT_BUFFER":  "8",

		"PROXY_ADDRESS":       "127.0.0.1:9999",
		"PROXY_SHELL_ORIGIN":  "https://shell.example",
		"PROXY_CACHE_VERSION": "berbagi-cerita-v2",
		"PROXY_MANIFEST":      "/,/index.html",

		"PUSH_VAPID_PUBLIC_KEY": "key",
		"PUSH_RECEIVER_URL":     "https://push.example",

		"NOTIFICATIONS_URLS": "logger://,ntfy://ntfy.sh/stories",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/log/story.log", cfg.App.LogFile)

	assert.Equal(t, "https://api.example/v1", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, int64(1024), cfg.Adapter.MaxPhotoSize)

	assert.Equal(t, "/data/story.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "memory", cfg.Storage.CacheBackend)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.SyncPause)
	assert.Equal(t, 8, cfg.Workers.EventBuffer)

	assert.Equal(t, "127.0.0.1:9999", cfg.Proxy.Address)
	assert.Equal(t, "https://shell.example", cfg.Proxy.ShellOrigin)
	assert.Equal(t, "berbagi-cerita-v2", cfg.Proxy.CacheVersion)
	assert.Equal(t, []string{"/", "/index.html"}, cfg.Proxy.Manifest)

	assert.Equal(t, "key", cfg.Push.VAPIDPublicKey)
	assert.Equal(t, "https://push.example", cfg.Push.ReceiverURL)

	assert.Equal(t, []string{"logger://", "ntfy://ntfy.sh/stories"}, cfg.Notifications.URLs)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Nil(t, cfg.Proxy.Manifest)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("ADAPTER_MAX_PHOTO_SIZE", "five")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
