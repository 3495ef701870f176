// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"time"
)

// CachedResponse is a stored HTTP response keyed by cache name and request
// URL. Only GET responses are ever stored.
type CachedResponse struct {
	CacheName string
	URL       string

	StatusCode int
	Header     http.Header
	Body       []byte

	StoredAt time.Time
}

const (
	// OfflineMessage is the message of the response synthesized when
	// neither the cache nor the network can answer an API request.
	OfflineMessage = "Offline - data unavailable"

	// OfflineHeader marks a synthesized offline response.
	OfflineHeader = "X-Story-Keeper-Offline"
)

// OfflineResponseBody returns the JSON body of the synthesized offline
// response.
func OfflineResponseBody() []byte {
	return []byte(`{"error":true,"message":"` + OfflineMessage + `"}`)
}
