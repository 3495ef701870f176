// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PushKeys holds the client public key and auth secret of a subscription,
// both base64url encoded.
type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription is the opaque handle produced by the push platform and
// registered with the remote API.
type PushSubscription struct {
	Endpoint       string   `json:"endpoint"`
	ExpirationTime *int64   `json:"expirationTime,omitempty"`
	Keys           PushKeys `json:"keys"`
}

// UnsubscribeRequest is the body of POST /notifications/unsubscribe.
type UnsubscribeRequest struct {
	Subscription PushSubscription `json:"subscription"`
}

// PushPayload is the JSON body delivered by a push message. Every field is
// optional; missing ones are filled from [DefaultNotification].
type PushPayload struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
	URL     string `json:"url"`
	StoryID string `json:"storyId"`
	Options *struct {
		Body string `json:"body"`
	} `json:"options,omitempty"`
}

// NotificationAction is a button attached to a notification.
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

const (
	NotificationActionOpen  = "open"
	NotificationActionClose = "close"
)

// Notification is a fully resolved notification ready to be shown.
type Notification struct {
	Title   string               `json:"title"`
	Body    string               `json:"body"`
	Icon    string               `json:"icon"`
	Badge   string               `json:"badge"`
	Tag     string               `json:"tag"`
	Vibrate []int                `json:"vibrate"`
	Actions []NotificationAction `json:"actions"`
	URL     string               `json:"url"`
	StoryID string               `json:"storyId,omitempty"`
}

// DefaultNotification returns the notification shown when a push message
// carries no usable payload.
func DefaultNotification() Notification {
	return Notification{
		Title:   "Story Keeper",
		Body:    "There is a new story!",
		Icon:    "/images/icon-192x192.png",
		Badge:   "/images/icon-72x72.png",
		Tag:     "story-notification",
		Vibrate: []int{200, 100, 200},
		Actions: []NotificationAction{
			{Action: NotificationActionOpen, Title: "View story"},
			{Action: NotificationActionClose, Title: "Close"},
		},
		URL: "/",
	}
}

// Resolve merges p over the defaults. The body is taken from body, then
// options.body, then message. The badge is always the default one.
func (p PushPayload) Resolve() Notification {
	n := DefaultNotification()
	if p.Title != "" {
		n.Title = p.Title
	}
	switch {
	case p.Body != "":
		n.Body = p.Body
	case p.Options != nil && p.Options.Body != "":
		n.Body = p.Options.Body
	case p.Message != "":
		n.Body = p.Message
	}
	if p.Icon != "" {
		n.Icon = p.Icon
	}
	if p.URL != "" {
		n.URL = p.URL
	}
	n.StoryID = p.StoryID
	return n
}

// PlatformSubscription is the local push platform's record of a live
// subscription, including the client private key needed to decrypt
// incoming messages.
type PlatformSubscription struct {
	ID                   string
	Endpoint             string
	Keys                 PushKeys
	PrivateKey           []byte
	ApplicationServerKey string
	CreatedAt            time.Time
}

// Public returns the subscription as it is shared with the API.
func (s PlatformSubscription) Public() PushSubscription {
	return PushSubscription{Endpoint: s.Endpoint, Keys: s.Keys}
}
