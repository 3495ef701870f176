package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
)

// cacheRepository stores cached HTTP responses in the cache_entries table.
// Headers are kept as JSON.
type cacheRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCacheRepository constructs a [CacheRepository] on db.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	logger.Debug().Msg("creating cache repository")
	return &cacheRepository{db: db, logger: logger}
}

func (r *cacheRepository) Put(ctx context.Context, entries ...models.CachedResponse) error {
	if len(entries) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	return r.db.withTx(ctx, "cacheRepository.Put", func(tx *sql.Tx) error {
		for _, entry := range entries {
			header, err := json.Marshal(entry.Header)
			if err != nil {
				return fmt.Errorf("failed to encode cached header (url=%s): %w", entry.URL, err)
			}

			storedAt := entry.StoredAt
			if storedAt.IsZero() {
				storedAt = time.Now().UTC()
			}

			if _, err = tx.ExecContext(ctx, upsertCacheEntry,
				entry.CacheName,
				entry.URL,
				entry.StatusCode,
				string(header),
				entry.Body,
				storedAt,
			); err != nil {
				log.Err(err).
					Str("func", "cacheRepository.Put").
					Str("cache", entry.CacheName).
					Str("url", entry.URL).
					Msg("failed to store cache entry")
				return fmt.Errorf("%w: failed to put cache entry (url=%s): %w", ErrExecutingStatement, entry.URL, err)
			}
		}
		return nil
	})
}

func (r *cacheRepository) Match(ctx context.Context, cacheName, url string) (models.CachedResponse, bool, error) {
	var (
		entry models.CachedResponse
		found bool
	)

	err := r.db.withTx(ctx, "cacheRepository.Match", func(tx *sql.Tx) error {
		var header string
		err := tx.QueryRowContext(ctx, selectCacheEntry, cacheName, url).Scan(
			&entry.CacheName,
			&entry.URL,
			&entry.StatusCode,
			&header,
			&entry.Body,
			&entry.StoredAt,
		)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			found = false
			return nil
		case err != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		entry.Header = make(http.Header)
		if err = json.Unmarshal([]byte(header), &entry.Header); err != nil {
			return fmt.Errorf("failed to decode cached header (url=%s): %w", url, err)
		}
		found = true
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheRepository.Match").
			Str("cache", cacheName).
			Str("url", url).
			Msg("failed to match cache entry")
		return models.CachedResponse{}, false, err
	}

	return entry, found, nil
}

func (r *cacheRepository) CacheNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, 3)

	err := r.db.withTx(ctx, "cacheRepository.CacheNames", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, selectCacheNames)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		names = names[:0]
		for rows.Next() {
			var name string
			if err = rows.Scan(&name); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheRepository.CacheNames").
			Msg("failed to list caches")
		return nil, err
	}

	return names, nil
}

func (r *cacheRepository) DeleteCache(ctx context.Context, cacheName string) error {
	query, args, err := buildDeleteCacheQuery(cacheName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.withTx(ctx, "cacheRepository.DeleteCache", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "cacheRepository.DeleteCache").
				Str("cache", cacheName).
				Msg("failed to delete cache")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
