// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultAPIBaseURL     = "https://story-api.dicoding.dev/v1"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxPhotoSize   = 5 << 20

	DefaultDSN          = "story-keeper.db"
	DefaultCacheBackend = CacheBackendSQLite

	DefaultSyncInterval = 5 * time.Minute
	DefaultSyncPause    = 500 * time.Millisecond
	DefaultEventBuffer  = 64

	DefaultProxyAddress = "localhost:8787"
	DefaultShellOrigin  = "http://localhost:9000"
	DefaultCacheVersion = "berbagi-cerita-v1"

	DefaultVAPIDPublicKey = "BCCs2eonMI-6H2ctvFaWg-UYdDv387Vno_bzUzALpB442r2lCnsHmtrx8biyPi_E-1fSGABK_Qs_GlvPoJJqxbk"
)

// Cache backends accepted by Storage.CacheBackend.
const (
	CacheBackendSQLite = "sqlite"
	CacheBackendMemory = "memory"
)

// DefaultManifest is the application shell fetched on install.
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/images/icon-192x192.png",
	"/images/icon-512x512.png",
	"https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;600&display=swap",
	"https://unpkg.com/leaflet@1.9.4/dist/leaflet.css",
	"https://unpkg.com/leaflet@1.9.4/dist/leaflet.js",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultAPIBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			MaxPhotoSize:   DefaultMaxPhotoSize,
		},
		Storage: Storage{
			DB:           DB{DSN: DefaultDSN},
			CacheBackend: DefaultCacheBackend,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
			SyncPause:    DefaultSyncPause,
			EventBuffer:  DefaultEventBuffer,
		},
		Proxy: Proxy{
			Address:      DefaultProxyAddress,
			ShellOrigin:  DefaultShellOrigin,
			CacheVersion: DefaultCacheVersion,
			Manifest:     append([]string(nil), DefaultManifest...),
		},
		Push: Push{
			VAPIDPublicKey: DefaultVAPIDPublicKey,
		},
	}
}
