// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks source-independent invariants of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.CacheBackend != "" &&
		cfg.Storage.CacheBackend != CacheBackendSQLite &&
		cfg.Storage.CacheBackend != CacheBackendMemory {
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidStorageConfigs, cfg.Storage.CacheBackend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !isAbsoluteURL(cfg.Adapter.BaseURL) || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.MaxPhotoSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.SyncPause < 0 || cfg.Workers.EventBuffer <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Proxy.Address == "" || !isAbsoluteURL(cfg.Proxy.ShellOrigin) || cfg.Proxy.CacheVersion == "" {
		return ErrInvalidProxyConfigs
	}

	if cfg.Push.VAPIDPublicKey == "" || !isAbsoluteURL(cfg.Push.ReceiverURL) {
		return ErrInvalidPushConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
