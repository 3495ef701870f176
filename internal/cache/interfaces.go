package cache

import (
	"context"

	"github.com/MKhiriev/go-story-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_mock.go -package=mock

// Storage keeps cached responses grouped by cache name. Put stores all
// entries or none of them.
type Storage interface {
	Put(ctx context.Context, entries ...models.CachedResponse) error
	Match(ctx context.Context, cacheName, url string) (models.CachedResponse, bool, error)
	CacheNames(ctx context.Context) ([]string, error)
	DeleteCache(ctx context.Context, cacheName string) error
}

// Notifier displays a notification.
type Notifier interface {
	Show(ctx context.Context, n models.Notification) error
}

// Clients gives access to open application windows.
type Clients interface {
	// Focus brings forward a window already showing url and reports
	// whether one existed.
	Focus(ctx context.Context, url string) (bool, error)
	// Open opens a new window on url.
	Open(ctx context.Context, url string) error
}

// Syncer flushes queued offline stories.
type Syncer interface {
	FlushOfflineStories(ctx context.Context) error
}
