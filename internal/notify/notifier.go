// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify displays notifications and tracks the application windows
// a notification click may bring forward.
//
// A notification is shown on every configured channel: the terminal UI
// toast queue and any shoutrrr service URL (ntfy, gotify, telegram, ...).
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// Notifier displays a notification.
type Notifier interface {
	Show(ctx context.Context, n models.Notification) error
}

// sender is the part of the shoutrrr router the notifier uses.
type sender interface {
	Send(message string, params *types.Params) []error
}

// ShoutrrrNotifier forwards notifications to shoutrrr services.
type ShoutrrrNotifier struct {
	sender      sender
	shellOrigin string
	logger      *logger.Logger
}

// NewShoutrrrNotifier builds a notifier for the given service URLs.
// shellOrigin turns relative notification URLs into links.
func NewShoutrrrNotifier(urls []string, shellOrigin string, logger *logger.Logger) (*ShoutrrrNotifier, error) {
	if len(urls) == 0 {
		return nil, ErrNoServices
	}

	router, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, fmt.Errorf("create shoutrrr sender: %w", err)
	}

	return &ShoutrrrNotifier{
		sender:      router,
		shellOrigin: strings.TrimRight(shellOrigin, "/"),
		logger:      logger,
	}, nil
}

// Show sends n to every service. Failures of individual services are
// joined into the returned error.
func (s *ShoutrrrNotifier) Show(ctx context.Context, n models.Notification) error {
	params := types.Params{}
	params.SetTitle(n.Title)

	errs := s.sender.Send(s.message(n), &params)

	var failed []error
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		s.logger.Err(errors.Join(failed...)).
			Str("func", "ShoutrrrNotifier.Show").
			Str("tag", n.Tag).
			Int("failed", len(failed)).
			Msg("notification delivery failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, errors.Join(failed...))
	}

	return nil
}

func (s *ShoutrrrNotifier) message(n models.Notification) string {
	link := n.URL
	if strings.HasPrefix(link, "/") && s.shellOrigin != "" {
		link = s.shellOrigin + link
	}
	if link == "" {
		return n.Body
	}
	return n.Body + "\n" + link
}

// Multi shows a notification on several notifiers. Every notifier is
// tried; the errors are joined.
type Multi []Notifier

func (m Multi) Show(ctx context.Context, n models.Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Show(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
