package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxPhotoSize   int64    `json:"max_photo_size"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		CacheBackend string `json:"cache_backend"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		SyncPause    Duration `json:"sync_pause"`
		EventBuffer  int      `json:"event_buffer"`
	} `json:"workers,omitempty"`

	Proxy struct {
		Address      string   `json:"address"`
		ShellOrigin  string   `json:"shell_origin"`
		CacheVersion string   `json:"cache_version"`
		Manifest     []string `json:"manifest"`
	} `json:"proxy,omitempty"`

	Push struct {
		VAPIDPublicKey string `json:"vapid_public_key"`
		ReceiverURL    string `json:"receiver_url"`
	} `json:"push,omitempty"`

	Notifications struct {
		URLs []string `json:"urls"`
	} `json:"notifications,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			MaxPhotoSize:   jsonCfg.Adapter.MaxPhotoSize,
		},
		Storage: Storage{
			DB:           DB{DSN: jsonCfg.Storage.DB.DSN},
			CacheBackend: jsonCfg.Storage.CacheBackend,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			SyncPause:    time.Duration(jsonCfg.Workers.SyncPause),
			EventBuffer:  jsonCfg.Workers.EventBuffer,
		},
		Proxy: Proxy{
			Address:      jsonCfg.Proxy.Address,
			ShellOrigin:  jsonCfg.Proxy.ShellOrigin,
			CacheVersion: jsonCfg.Proxy.CacheVersion,
			Manifest:     jsonCfg.Proxy.Manifest,
		},
		Push: Push{
			VAPIDPublicKey: jsonCfg.Push.VAPIDPublicKey,
			ReceiverURL:    jsonCfg.Push.ReceiverURL,
		},
		Notifications: Notifications{
			URLs: jsonCfg.Notifications.URLs,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
