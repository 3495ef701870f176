// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's use cases on top of the remote
// story API, the local store and the push subscription manager.
//
// Services validate input before any network call, translate adapter
// failures into the sentinels of errors.go and own the offline behaviour:
// a story that cannot be sent is queued locally and flushed later by
// [SyncService], either on a background-sync event or on the periodic
// [SyncJob].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-story-keeper/models"
)

// AppInfoService exposes build and cache metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetCacheVersion(ctx context.Context) string
}

// AuthService handles account registration and the login session.
type AuthService interface {
	// Register creates an account. The user still has to log in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates the user, stores the session and schedules a
	// flush of stories queued while logged out or offline.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Logout clears the stored token and user name.
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a token is stored.
	IsAuthenticated(ctx context.Context) bool

	// UserName returns the display name of the logged-in user, or "".
	UserName(ctx context.Context) string
}

// StoryService lists, fetches and submits stories.
type StoryService interface {
	// List returns a page of stories. Zero Page and Size take defaults.
	List(ctx context.Context, query models.StoryListQuery) ([]models.Story, error)

	// Get fetches a single story.
	Get(ctx context.Context, id string) (models.Story, error)

	// Create validates and submits story. When the API cannot be reached
	// the story is queued for background sync and queued is true.
	Create(ctx context.Context, story models.NewStory) (queued bool, err error)

	// Pending returns the stories waiting in the offline queue.
	Pending(ctx context.Context) ([]models.OfflineStory, error)
}

// FavoriteQuery filters and orders the favorites list. Empty fields are
// ignored.
type FavoriteQuery struct {
	Search string
	SortBy models.FavoriteSortField
	Order  models.SortOrder
}

// FavoriteService manages locally saved stories.
type FavoriteService interface {
	Add(ctx context.Context, story models.Story) error
	Remove(ctx context.Context, id string) error
	IsFavorite(ctx context.Context, id string) (bool, error)

	// Toggle saves story when it is not a favorite and removes it
	// otherwise. It reports whether the story is a favorite afterwards.
	Toggle(ctx context.Context, story models.Story) (bool, error)

	List(ctx context.Context, query FavoriteQuery) ([]models.FavoriteStory, error)
}

// PushService manages the push subscription and test notifications.
type PushService interface {
	Init(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Unsubscribe(ctx context.Context) error
	IsSubscribed(ctx context.Context) (bool, error)

	// SendTestNotification shows n merged over the default notification.
	// Notification permission must already be granted.
	SendTestNotification(ctx context.Context, n models.Notification) error

	// SendServerTestPush asks the API to push a test message to this user.
	SendServerTestPush(ctx context.Context) error
}

// SyncService flushes the offline story queue.
type SyncService interface {
	FlushOfflineStories(ctx context.Context) error
}

// SyncJob runs SyncService.FlushOfflineStories periodically.
type SyncJob interface {
	// Start launches the background flush. Any running job is stopped
	// first. A non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop blocks until the background goroutine has exited.
	Stop()
}

// SyncRegistrar schedules a background-sync event by tag.
type SyncRegistrar interface {
	RegisterSync(ctx context.Context, tag string) error
}

// Session is the part of the session store the services depend on.
type Session interface {
	Token(ctx context.Context) (string, error)
	SetLogin(ctx context.Context, result models.LoginResult) error
	ClearLogin(ctx context.Context) error
	UserName(ctx context.Context) (string, error)
	IsAuthenticated(ctx context.Context) bool
}
