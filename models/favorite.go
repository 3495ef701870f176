// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FavoriteStory is a story copy kept in the local store. The local copy
// is never refreshed from the server after it is saved.
type FavoriteStory struct {
	Story

	// Owner is the display owner; falls back to Name when empty.
	Owner string `json:"owner,omitempty"`

	// SavedAt is the moment the favorite was stored locally.
	SavedAt time.Time `json:"savedAt"`
}

// FavoriteFromStory builds a favorite from a fetched story.
func FavoriteFromStory(s Story, now time.Time) FavoriteStory {
	return FavoriteStory{Story: s, Owner: s.Name, SavedAt: now}
}

// FavoriteSortField selects the field used by favorites sorting.
type FavoriteSortField string

const (
	SortByCreatedAt FavoriteSortField = "createdAt"
	SortByName      FavoriteSortField = "name"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
