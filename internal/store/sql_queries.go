// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	insertFavorite = `
		INSERT INTO favorites (
			id,
			name,
			description,
			photo_url,
			created_at,
			lat,
			lon,
			owner,
			saved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	deleteFavorite = `DELETE FROM favorites WHERE id = ?;`

	insertOfflineStory = `
		INSERT INTO offline_stories (
			description,
			photo,
			photo_name,
			photo_content_type,
			lat,
			lon,
			timestamp,
			synced
		) VALUES (?, ?, ?, ?, ?, ?, ?, 0);`

	selectAllOfflineStories = `
		SELECT
			temp_id,
			description,
			photo,
			photo_name,
			photo_content_type,
			lat,
			lon,
			timestamp,
			synced
		FROM offline_stories
		ORDER BY temp_id;`

	deleteOfflineStory      = `DELETE FROM offline_stories WHERE temp_id = ?;`
	deleteAllOfflineStories = `DELETE FROM offline_stories;`

	selectSessionValue = `SELECT value FROM kv_session WHERE key = ?;`
	upsertSessionValue = `
		INSERT INTO kv_session (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
	deleteSessionValue = `DELETE FROM kv_session WHERE key = ?;`

	upsertCacheEntry = `
		INSERT INTO cache_entries (cache_name, url, status, header, body, stored_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (cache_name, url) DO UPDATE SET
			status = excluded.status,
			header = excluded.header,
			body = excluded.body,
			stored_at = excluded.stored_at;`

	selectCacheEntry = `
		SELECT cache_name, url, status, header, body, stored_at
		FROM cache_entries
		WHERE cache_name = ? AND url = ?;`

	selectCacheNames = `SELECT DISTINCT cache_name FROM cache_entries ORDER BY cache_name;`

	insertPushSubscription = `
		INSERT INTO push_subscriptions (
			id,
			endpoint,
			p256dh,
			auth,
			private_key,
			application_server_key,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	deletePushSubscription = `DELETE FROM push_subscriptions WHERE id = ?;`
)

var (
	favoriteColumns = []string{
		"id",
		"name",
		"description",
		"photo_url",
		"created_at",
		"lat",
		"lon",
		"owner",
		"saved_at",
	}

	pushSubscriptionColumns = []string{
		"id",
		"endpoint",
		"p256dh",
		"auth",
		"private_key",
		"application_server_key",
		"created_at",
	}
)

// buildSelectFavoritesQuery selects favorites in primary-key order,
// optionally restricted to a single id.
func buildSelectFavoritesQuery(id string) (string, []any, error) {
	query := sq.Select(favoriteColumns...).
		From("favorites").
		OrderBy("id")

	if id != "" {
		query = query.Where(sq.Eq{"id": id})
	}

	return query.ToSql()
}

// buildDeleteCacheQuery deletes all entries of one cache.
func buildDeleteCacheQuery(cacheName string) (string, []any, error) {
	return sq.Delete("cache_entries").
		Where(sq.Eq{"cache_name": cacheName}).
		ToSql()
}

// buildSelectPushSubscriptionQuery selects one subscription by id, or the
// newest one when id is empty.
func buildSelectPushSubscriptionQuery(id string) (string, []any, error) {
	query := sq.Select(pushSubscriptionColumns...).
		From("push_subscriptions").
		OrderBy("created_at DESC").
		Limit(1)

	if id != "" {
		query = query.Where(sq.Eq{"id": id})
	}

	return query.ToSql()
}
