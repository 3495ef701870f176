package cache

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	gocache "github.com/patrickmn/go-cache"
)

const keySeparator = "\x00"

// memoryStorage keeps entries in a go-cache map keyed by
// "<cache name>\x00<url>". Entries never expire, so no janitor runs; the
// mutex makes batch writes and cache deletion atomic for readers.
type memoryStorage struct {
	mu    sync.RWMutex
	items *gocache.Cache

	logger *logger.Logger
}

// NewMemoryStorage constructs an in-process [Storage].
func NewMemoryStorage(logger *logger.Logger) Storage {
	return &memoryStorage{
		items:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

func memoryKey(cacheName, url string) string {
	return cacheName + keySeparator + url
}

func (s *memoryStorage) Put(ctx context.Context, entries ...models.CachedResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range entries {
		if entry.StoredAt.IsZero() {
			entry.StoredAt = time.Now().UTC()
		}
		s.items.Set(memoryKey(entry.CacheName, entry.URL), cloneResponse(entry), gocache.NoExpiration)
	}
	return nil
}

func (s *memoryStorage) Match(ctx context.Context, cacheName, url string) (models.CachedResponse, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, found := s.items.Get(memoryKey(cacheName, url))
	if !found {
		return models.CachedResponse{}, false, nil
	}
	return cloneResponse(v.(models.CachedResponse)), true, nil
}

func (s *memoryStorage) CacheNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, 3)
	for key := range s.items.Items() {
		name, _, _ := strings.Cut(key, keySeparator)
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return names, nil
}

func (s *memoryStorage) DeleteCache(ctx context.Context, cacheName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := cacheName + keySeparator
	for key := range s.items.Items() {
		if strings.HasPrefix(key, prefix) {
			s.items.Delete(key)
		}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "memoryStorage.DeleteCache").
		Str("cache", cacheName).
		Msg("cache deleted")
	return nil
}

// cloneResponse copies the mutable parts so callers cannot alter stored
// entries.
func cloneResponse(r models.CachedResponse) models.CachedResponse {
	r.Header = r.Header.Clone()
	r.Body = slices.Clone(r.Body)
	return r
}
