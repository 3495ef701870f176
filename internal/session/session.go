// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session is the single typed accessor for the client's global
// session state: the bearer token, the push-subscription flags and the
// notification permission. Values live in the kv_session table and are
// last-writer-wins.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/models"
)

// Keys of the session table.
const (
	KeyToken            = "story_token"
	KeyPushSubscribed   = "push_subscribed"
	KeyPushSubscription = "push_subscription"
	KeyPushPermission   = "push_permission"
	KeyUserName         = "story_user_name"
)

const flagTrue = "true"

// Session reads and writes session values.
type Session struct {
	repo   store.SessionRepository
	logger *logger.Logger
}

func New(repo store.SessionRepository, logger *logger.Logger) *Session {
	return &Session{repo: repo, logger: logger}
}

// Token returns the stored bearer token, or "" when logged out. It
// implements adapter.TokenSource.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, _, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

// SetLogin stores the token and display name of a fresh login.
func (s *Session) SetLogin(ctx context.Context, result models.LoginResult) error {
	if err := s.repo.Set(ctx, KeyToken, result.Token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.repo.Set(ctx, KeyUserName, result.Name); err != nil {
		return fmt.Errorf("store user name: %w", err)
	}
	return nil
}

// UserName returns the display name of the logged-in user.
func (s *Session) UserName(ctx context.Context) (string, error) {
	name, _, err := s.repo.Get(ctx, KeyUserName)
	return name, err
}

// ClearLogin forgets the token and user name.
func (s *Session) ClearLogin(ctx context.Context) error {
	if err := s.repo.Delete(ctx, KeyToken); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return s.repo.Delete(ctx, KeyUserName)
}

// IsAuthenticated reports whether a token is stored. Expiry is not
// checked.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "Session.IsAuthenticated").
			Msg("treating unreadable session as logged out")
		return false
	}
	return token != ""
}

// PushSubscribed reports the local "was subscribed" hint.
func (s *Session) PushSubscribed(ctx context.Context) (bool, error) {
	v, _, err := s.repo.Get(ctx, KeyPushSubscribed)
	if err != nil {
		return false, fmt.Errorf("read push flag: %w", err)
	}
	return v == flagTrue, nil
}

// PushSubscription returns the last recorded subscription.
func (s *Session) PushSubscription(ctx context.Context) (models.PushSubscription, bool, error) {
	raw, found, err := s.repo.Get(ctx, KeyPushSubscription)
	if err != nil || !found {
		return models.PushSubscription{}, false, err
	}

	var sub models.PushSubscription
	if err = json.Unmarshal([]byte(raw), &sub); err != nil {
		return models.PushSubscription{}, false, fmt.Errorf("decode push subscription: %w", err)
	}
	return sub, true, nil
}

// SetPushSubscription records sub and sets the subscribed flag.
func (s *Session) SetPushSubscription(ctx context.Context, sub models.PushSubscription) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode push subscription: %w", err)
	}
	if err = s.repo.Set(ctx, KeyPushSubscription, string(raw)); err != nil {
		return fmt.Errorf("store push subscription: %w", err)
	}
	return s.repo.Set(ctx, KeyPushSubscribed, flagTrue)
}

// ClearPushSubscription removes both push keys.
func (s *Session) ClearPushSubscription(ctx context.Context) error {
	if err := s.repo.Delete(ctx, KeyPushSubscribed); err != nil {
		return fmt.Errorf("delete push flag: %w", err)
	}
	return s.repo.Delete(ctx, KeyPushSubscription)
}

// PushPermission returns the stored notification permission, or "" when
// the user was never asked.
func (s *Session) PushPermission(ctx context.Context) (string, error) {
	v, _, err := s.repo.Get(ctx, KeyPushPermission)
	return v, err
}

func (s *Session) SetPushPermission(ctx context.Context, permission string) error {
	return s.repo.Set(ctx, KeyPushPermission, permission)
}
