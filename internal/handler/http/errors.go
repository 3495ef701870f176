// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidUpstream is returned by NewHandler when the API base URL or
	// the shell origin is not an absolute URL.
	ErrInvalidUpstream = errors.New("invalid upstream url")

	// ErrNoTransport is returned by NewHandler without a round tripper to
	// forward requests through.
	ErrNoTransport = errors.New("no proxy transport")
)
