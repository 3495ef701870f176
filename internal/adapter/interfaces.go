// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the remote story API.
//
// [StoryAPI] decouples the service layer from HTTP. The package ships a
// resty-based implementation ([NewHTTPStoryAPI]) whose transport can be
// replaced, which is how the caching interceptor sits in front of every
// call.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, carrying the API's message text, so callers use [errors.Is]
// (e.g. [ErrUnauthorized] for 401). Failures to reach the API at all,
// including the interceptor's synthesized offline answer, are reported as
// [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-story-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/story_api_mock.go -package=mock

// TokenSource yields the bearer token for authenticated requests. An empty
// token means the user is logged out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StoryAPI is the remote story API.
type StoryAPI interface {
	// Register creates a user account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// GetStories lists stories. The token is attached when present.
	GetStories(ctx context.Context, query models.StoryListQuery) ([]models.Story, error)

	// GetStoryByID fetches a single story.
	GetStoryByID(ctx context.Context, id string) (models.Story, error)

	// PostStory submits a story as a multipart form. Requires a token.
	PostStory(ctx context.Context, story models.NewStory) error

	// SubscribePush registers a push subscription with the API.
	SubscribePush(ctx context.Context, sub models.PushSubscription) error

	// UnsubscribePush removes a push subscription from the API.
	UnsubscribePush(ctx context.Context, sub models.PushSubscription) error

	// SendTestPush asks the API to push a test notification to the
	// subscriptions of the current user.
	SendTestPush(ctx context.Context) error
}
