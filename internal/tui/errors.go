// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/internal/service"
	"github.com/MKhiriev/go-story-keeper/internal/validators"
)

var (
	// ErrUserQuit is returned by TUI.Run when the user quits.
	ErrUserQuit = errors.New("user quit the program")

	ErrMissingService = errors.New("tui: missing service")
)

// humanizeError turns a service error into a status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var verr *validators.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Please fix the highlighted fields"
	case errors.Is(err, service.ErrNetwork):
		return "No network connection or the server is unreachable"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "You are not logged in"
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrTokenInvalid):
		return "Your session has expired, please log in again"
	case errors.Is(err, service.ErrWrongCredentials):
		return "Wrong email or password"
	case errors.Is(err, service.ErrEmailTaken):
		return "This email is already registered"
	case errors.Is(err, service.ErrStoryNotFound):
		return "Story not found"
	case errors.Is(err, service.ErrPhotoTooLarge):
		return "The photo is too large"
	case errors.Is(err, service.ErrServerError):
		return "The server failed, try again later"
	case errors.Is(err, push.ErrPermissionDenied):
		return "Notification permission was denied"
	case errors.Is(err, push.ErrNotReady):
		return "Offline support is not installed yet"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unreachable"
	}

	return err.Error()
}

// fieldError returns the validation message for field, or "".
func fieldError(err error, field string) string {
	var verr *validators.ValidationError
	if !errors.As(err, &verr) {
		return ""
	}
	if ferr := verr.Field(field); ferr != nil {
		return ferr.Error()
	}
	return ""
}
