package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"version": "0.1.0", "log_file": "x.log"},
		"adapter": map[string]any{"base_url": "https://api.example", "request_timeout": "5s", "max_photo_size": 100},
		"storage": map[string]any{"db": map[string]any{"dsn": "j.db"}, "cache_backend": "sqlite"},
		"workers": map[string]any{"sync_interval": 60000000000, "sync_pause": "2s", "event_buffer": 4},
		"proxy": map[string]any{
			"address": "localhost:1", "shell_origin": "http://s", "cache_version": "v1",
			"manifest": []string{"/a", "/b"},
		},
		"push":          map[string]any{"vapid_public_key": "k", "receiver_url": "http://r"},
		"notifications": map[string]any{"urls": []string{"logger://"}},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "x.log", cfg.App.LogFile)
	assert.Equal(t, "https://api.example", cfg.Adapter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, int64(100), cfg.Adapter.MaxPhotoSize)
	assert.Equal(t, "j.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.SyncPause)
	assert.Equal(t, 4, cfg.Workers.EventBuffer)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Proxy.Manifest)
	assert.Equal(t, "k", cfg.Push.VAPIDPublicKey)
	assert.Equal(t, []string{"logger://"}, cfg.Notifications.URLs)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))

	out, err := json.Marshal(Duration(time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1s"`, string(out))
}
