package service

import (
	"context"
	"fmt"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-story-keeper/internal/adapter"
	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/models"
)

type pushService struct {
	manager  *push.Manager
	platform push.Platform
	notifier cache.Notifier
	api      adapter.StoryAPI

	logger *logger.Logger
}

// NewPushService wraps manager with test notification support. platform
// must be the one manager subscribes through.
func NewPushService(manager *push.Manager, platform push.Platform, notifier cache.Notifier, api adapter.StoryAPI, logger *logger.Logger) PushService {
	return &pushService{
		manager:  manager,
		platform: platform,
		notifier: notifier,
		api:      api,
		logger:   logger,
	}
}

func (p *pushService) Init(ctx context.Context) error {
	return p.manager.Init(ctx)
}

func (p *pushService) Subscribe(ctx context.Context) error {
	_, err := p.manager.Subscribe(ctx)
	return err
}

func (p *pushService) Unsubscribe(ctx context.Context) error {
	return p.manager.Unsubscribe(ctx)
}

func (p *pushService) IsSubscribed(ctx context.Context) (bool, error) {
	return p.manager.IsSubscribed(ctx)
}

func (p *pushService) SendTestNotification(ctx context.Context, n models.Notification) error {
	state, err := p.platform.PermissionState(ctx)
	if err != nil {
		return fmt.Errorf("read notification permission: %w", err)
	}
	if state != push.PermissionGranted {
		return push.ErrPermissionDenied
	}

	if err = mergo.Merge(&n, models.DefaultNotification()); err != nil {
		return fmt.Errorf("merge notification defaults: %w", err)
	}

	if err = p.notifier.Show(ctx, n); err != nil {
		p.logger.Err(err).
			Str("func", "pushService.SendTestNotification").
			Msg("failed to show test notification")
		return err
	}
	return nil
}

func (p *pushService) SendServerTestPush(ctx context.Context) error {
	if err := p.api.SendTestPush(ctx); err != nil {
		p.logger.Err(err).
			Str("func", "pushService.SendServerTestPush").
			Msg("server test push failed")
		return mapAdapterError(err)
	}
	return nil
}
