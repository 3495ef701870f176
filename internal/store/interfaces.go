// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-story-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FavoriteRepository persists favorite stories keyed by story id.
type FavoriteRepository interface {
	// AddFavorite inserts fav. It never overwrites: an existing id yields
	// [ErrFavoriteAlreadyExists].
	AddFavorite(ctx context.Context, fav models.FavoriteStory) error

	// GetAllFavorites returns every favorite in primary-key order.
	GetAllFavorites(ctx context.Context) ([]models.FavoriteStory, error)

	// GetFavoriteByID returns the favorite with the given id. A missing
	// record is reported through the bool, not as an error.
	GetFavoriteByID(ctx context.Context, id string) (models.FavoriteStory, bool, error)

	// DeleteFavorite removes the favorite. Deleting a missing id succeeds.
	DeleteFavorite(ctx context.Context, id string) error

	// SearchFavorites returns favorites whose name or description contains
	// query, case-insensitively.
	SearchFavorites(ctx context.Context, query string) ([]models.FavoriteStory, error)

	// SortFavorites returns all favorites ordered by field in the given order.
	SortFavorites(ctx context.Context, field models.FavoriteSortField, order models.SortOrder) ([]models.FavoriteStory, error)
}

// OfflineStoryRepository persists story submissions queued while offline.
type OfflineStoryRepository interface {
	// AddOfflineStory stores story with a fresh TempID, the current
	// timestamp and Synced=false, and returns the stored record.
	AddOfflineStory(ctx context.Context, story models.OfflineStory) (models.OfflineStory, error)

	// GetAllOfflineStories returns the queue in TempID order.
	GetAllOfflineStories(ctx context.Context) ([]models.OfflineStory, error)

	// DeleteOfflineStory removes one queued story. Missing ids are ignored.
	DeleteOfflineStory(ctx context.Context, tempID int64) error

	// ClearAllOfflineStories empties the queue.
	ClearAllOfflineStories(ctx context.Context) error
}

// SessionRepository is a string key-value store for session state.
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CacheRepository stores HTTP responses grouped into named caches.
type CacheRepository interface {
	// Put stores entries in a single transaction: either all are written
	// or none is.
	Put(ctx context.Context, entries ...models.CachedResponse) error

	// Match returns the entry stored under cacheName and url.
	Match(ctx context.Context, cacheName, url string) (models.CachedResponse, bool, error)

	// CacheNames lists the names of all non-empty caches.
	CacheNames(ctx context.Context) ([]string, error)

	// DeleteCache drops every entry of the named cache.
	DeleteCache(ctx context.Context, cacheName string) error
}

// PushSubscriptionRepository persists subscriptions of the local push
// platform.
type PushSubscriptionRepository interface {
	SaveSubscription(ctx context.Context, sub models.PlatformSubscription) error

	// GetActiveSubscription returns the most recently created subscription.
	GetActiveSubscription(ctx context.Context) (models.PlatformSubscription, bool, error)

	GetSubscriptionByID(ctx context.Context, id string) (models.PlatformSubscription, bool, error)

	DeleteSubscription(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
