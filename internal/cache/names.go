// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache is the client's fetch interception layer.
//
// [Interceptor] is an http.RoundTripper placed in front of every outgoing
// request: stale-while-revalidate for the story API origin, cache-first for
// everything else, with the cached shell document as the fallback for page
// navigations. [Registration] populates and prunes the named caches
// (install and activate), and [Worker] handles push, notification-click and
// background-sync events on its own goroutine.
//
// Responses are kept in a [Storage], either the client SQLite database or an
// in-process go-cache map.
package cache

import "slices"

const (
	// DefaultShellCacheName holds the install manifest of the current
	// deployment.
	DefaultShellCacheName = "berbagi-cerita-v1"

	// AssetsCacheName holds static assets fetched at runtime.
	AssetsCacheName = "assets-v1"

	// APICacheName holds responses of the story API.
	APICacheName = "api-cache-v1"
)

// Names is the set of caches the current deployment owns.
type Names struct {
	Shell  string
	Assets string
	API    string
}

// NewNames returns the cache names for a deployment whose shell cache is
// shellCache. An empty value selects [DefaultShellCacheName].
func NewNames(shellCache string) Names {
	if shellCache == "" {
		shellCache = DefaultShellCacheName
	}
	return Names{Shell: shellCache, Assets: AssetsCacheName, API: APICacheName}
}

// AllowList returns the three names that survive activation.
func (n Names) AllowList() []string {
	return []string{n.Shell, n.Assets, n.API}
}

// Allowed reports whether name is in the allow-list.
func (n Names) Allowed(name string) bool {
	return slices.Contains(n.AllowList(), name)
}

// lookupOrder is the order in which cache-first requests search caches.
func (n Names) lookupOrder() []string {
	return []string{n.Shell, n.Assets, n.API}
}
