// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the story client: local storage, the caching
// proxy, push handling, the background worker and the terminal UI.
package client
