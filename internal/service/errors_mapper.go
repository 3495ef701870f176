// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/adapter"
	"github.com/MKhiriev/go-story-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The API message is kept in the returned error text.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrNetwork, err)

	case errors.Is(err, adapter.ErrEmptyToken):
		return ErrNotAuthenticated

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgEmailTaken:
			return ErrEmailTaken
		case app.MsgPayloadTooLarge:
			return ErrPhotoTooLarge
		}
		return fmt.Errorf("%w: %s", ErrRejected, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgUserNotFound, app.MsgInvalidPassword:
			return ErrWrongCredentials
		case app.MsgTokenExpired:
			return ErrTokenIsExpired
		case app.MsgInvalidToken, app.MsgInvalidTokenSignature:
			return ErrTokenInvalid
		}
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, msg)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, msg)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrStoryNotFound, msg)

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrPhotoTooLarge

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %s", ErrServerError, msg)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// isUnreachable reports whether err means the API could not be reached,
// as opposed to the API answering with a rejection. A request timeout
// counts as unreachable unless the caller's own context ended.
func isUnreachable(ctx context.Context, err error) bool {
	if errors.Is(err, ErrNetwork) || errors.Is(err, adapter.ErrNetwork) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil
}

// isTransient reports whether a failed submission should stay queued for a
// later attempt.
func isTransient(ctx context.Context, err error) bool {
	return isUnreachable(ctx, err) ||
		errors.Is(err, ErrServerError) ||
		errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrTokenIsExpired) ||
		errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, context.Canceled)
}
