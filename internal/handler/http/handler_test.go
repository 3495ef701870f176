// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	t.Run("requires transport", func(t *testing.T) {
		_, err := NewHandler(testConfig(), Dependencies{}, logger.Nop())
		assert.ErrorIs(t, err, ErrNoTransport)
	})

	t.Run("rejects relative api base", func(t *testing.T) {
		cfg := testConfig()
		cfg.Adapter.BaseURL = "/v1"
		_, err := NewHandler(cfg, Dependencies{Transport: &recordingTransport{}}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidUpstream)
	})

	t.Run("rejects empty shell origin", func(t *testing.T) {
		cfg := testConfig()
		cfg.Proxy.ShellOrigin = ""
		_, err := NewHandler(cfg, Dependencies{Transport: &recordingTransport{}}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidUpstream)
	})

	t.Run("builds both proxies", func(t *testing.T) {
		h, err := NewHandler(testConfig(), Dependencies{Transport: &recordingTransport{}}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, h.apiProxy)
		assert.NotNil(t, h.shellProxy)
	})
}

func TestParseUpstream(t *testing.T) {
	u, err := parseUpstream("https://story-api.example/v1")
	require.NoError(t, err)
	assert.Equal(t, "story-api.example", u.Host)
	assert.Equal(t, "/v1", u.Path)

	_, err = parseUpstream("::bad")
	assert.ErrorIs(t, err, ErrInvalidUpstream)
}
