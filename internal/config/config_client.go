package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// Version is the application version.
	Version string
	// LogFile is the client log path.
	LogFile string
}

// ClientAdapter holds settings of the remote story API client.
type ClientAdapter struct {
	// BaseURL is the API root.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// MaxPhotoSize is the largest accepted photo in bytes.
	MaxPhotoSize int64
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// CacheBackend is either [CacheBackendSQLite] or [CacheBackendMemory].
	CacheBackend string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the offline-story flush runs.
	SyncInterval time.Duration
	// SyncPause is the minimum gap between two queued submissions.
	SyncPause time.Duration
	// EventBuffer is the worker event queue capacity.
	EventBuffer int
}

// ClientProxy holds local caching proxy settings.
type ClientProxy struct {
	Address      string
	ShellOrigin  string
	CacheVersion string
	Manifest     []string
}

// ClientPush holds push-subscription settings.
type ClientPush struct {
	VAPIDPublicKey string
	// ReceiverURL is the base URL push endpoints are minted under.
	ReceiverURL string
}

// ClientNotifications holds notification delivery settings.
type ClientNotifications struct {
	URLs []string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App           ClientApp
	Adapter       ClientAdapter
	Storage       ClientStorage
	Workers       ClientWorkers
	Proxy         ClientProxy
	Push          ClientPush
	Notifications ClientNotifications
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. flags may be nil.
func GetClientConfig(flags *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	receiverURL := cfg.Push.ReceiverURL
	if receiverURL == "" && cfg.Proxy.Address != "" {
		receiverURL = "http://" + cfg.Proxy.Address
	}

	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			MaxPhotoSize:   cfg.Adapter.MaxPhotoSize,
		},
		Storage: ClientStorage{
			DB:           ClientDB{DSN: cfg.Storage.DB.DSN},
			CacheBackend: cfg.Storage.CacheBackend,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			SyncPause:    cfg.Workers.SyncPause,
			EventBuffer:  cfg.Workers.EventBuffer,
		},
		Proxy: ClientProxy{
			Address:      cfg.Proxy.Address,
			ShellOrigin:  cfg.Proxy.ShellOrigin,
			CacheVersion: cfg.Proxy.CacheVersion,
			Manifest:     cfg.Proxy.Manifest,
		},
		Push: ClientPush{
			VAPIDPublicKey: cfg.Push.VAPIDPublicKey,
			ReceiverURL:    receiverURL,
		},
		Notifications: ClientNotifications{
			URLs: cfg.Notifications.URLs,
		},
	}
}
