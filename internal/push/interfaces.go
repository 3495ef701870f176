// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package push manages the client's push subscription.
//
// [Manager] drives the subscription state machine (unregistered,
// registered but unsubscribed, subscribed) on top of a [Platform]. The
// platform is the source of truth; the session flag is only a hint used to
// restore a lost subscription on startup.
//
// [LocalPlatform] is a self-hosted push service: it mints P-256 key pairs
// and endpoints under the local proxy, and [Receiver] decrypts the RFC 8291
// messages a push server posts there.
package push

import (
	"context"

	"github.com/MKhiriev/go-story-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/push_mock.go -package=mock

// Permission is the notification permission state.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Platform is the push service the client subscribes with.
type Platform interface {
	// PermissionState returns the current permission without prompting.
	PermissionState(ctx context.Context) (Permission, error)

	// RequestPermission prompts the user unless the decision was already
	// made, and returns the resulting state.
	RequestPermission(ctx context.Context) (Permission, error)

	// GetSubscription returns the live subscription, if any.
	GetSubscription(ctx context.Context) (models.PushSubscription, bool, error)

	// Subscribe returns the live subscription for applicationServerKey,
	// creating one when none exists. Permission must be granted.
	Subscribe(ctx context.Context, applicationServerKey string) (models.PushSubscription, error)

	// Unsubscribe drops the live subscription and reports whether there
	// was one.
	Unsubscribe(ctx context.Context) (bool, error)
}

// Registrar makes sure the interception layer is installed.
type Registrar interface {
	Register(ctx context.Context) error
}

// API is the part of the story API dealing with push subscriptions.
type API interface {
	SubscribePush(ctx context.Context, sub models.PushSubscription) error
	UnsubscribePush(ctx context.Context, sub models.PushSubscription) error
}

// Session holds the token and the local subscription hint.
type Session interface {
	Token(ctx context.Context) (string, error)
	PushSubscribed(ctx context.Context) (bool, error)
	SetPushSubscription(ctx context.Context, sub models.PushSubscription) error
	ClearPushSubscription(ctx context.Context) error
}

// PermissionStore persists the notification permission decision.
type PermissionStore interface {
	PushPermission(ctx context.Context) (string, error)
	SetPushPermission(ctx context.Context, permission string) error
}
