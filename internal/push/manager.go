package push

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
)

// Manager keeps the platform subscription, the API registration and the
// local hint together. Server failures never undo a platform change.
type Manager struct {
	registrar Registrar
	platform  Platform
	api       API
	session   Session

	serverKey string
	logger    *logger.Logger
}

// NewManager constructs a [Manager] subscribing with serverKey, the
// base64url VAPID public key of the push-sending server.
func NewManager(registrar Registrar, platform Platform, api API, session Session, serverKey string, logger *logger.Logger) *Manager {
	return &Manager{
		registrar: registrar,
		platform:  platform,
		api:       api,
		session:   session,
		serverKey: serverKey,
		logger:    logger,
	}
}

// Subscribe registers the interception layer, asks for permission,
// subscribes on the platform and tells the API about it. A failed API call
// is logged; the platform subscription stays.
func (m *Manager) Subscribe(ctx context.Context) (models.PushSubscription, error) {
	if err := m.registrar.Register(ctx); err != nil {
		return models.PushSubscription{}, fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	permission, err := m.platform.RequestPermission(ctx)
	if err != nil {
		return models.PushSubscription{}, fmt.Errorf("request permission: %w", err)
	}
	if permission != PermissionGranted {
		return models.PushSubscription{}, ErrPermissionDenied
	}

	return m.subscribe(ctx)
}

func (m *Manager) subscribe(ctx context.Context) (models.PushSubscription, error) {
	sub, err := m.platform.Subscribe(ctx, m.serverKey)
	if err != nil {
		return models.PushSubscription{}, fmt.Errorf("platform subscribe: %w", err)
	}

	m.notifyAPI(ctx, "Manager.Subscribe", sub, m.api.SubscribePush)

	if err = m.session.SetPushSubscription(ctx, sub); err != nil {
		m.logger.Warn().Err(err).
			Str("func", "Manager.Subscribe").
			Msg("failed to record subscription locally")
	}

	m.logger.Info().
		Str("func", "Manager.Subscribe").
		Str("endpoint", sub.Endpoint).
		Msg("subscribed to push notifications")
	return sub, nil
}

// Unsubscribe drops the platform subscription if there is one, tells the
// API and clears the local hint. Calling it again is harmless.
func (m *Manager) Unsubscribe(ctx context.Context) error {
	sub, found, err := m.platform.GetSubscription(ctx)
	if err != nil {
		return fmt.Errorf("read platform subscription: %w", err)
	}

	if found {
		if _, err = m.platform.Unsubscribe(ctx); err != nil {
			return fmt.Errorf("platform unsubscribe: %w", err)
		}
		m.notifyAPI(ctx, "Manager.Unsubscribe", sub, m.api.UnsubscribePush)
	}

	if err = m.session.ClearPushSubscription(ctx); err != nil {
		m.logger.Warn().Err(err).
			Str("func", "Manager.Unsubscribe").
			Msg("failed to clear local subscription flags")
	}
	return nil
}

// IsSubscribed asks the platform; the local hint is not consulted.
func (m *Manager) IsSubscribed(ctx context.Context) (bool, error) {
	_, found, err := m.platform.GetSubscription(ctx)
	if err != nil {
		return false, fmt.Errorf("read platform subscription: %w", err)
	}
	return found, nil
}

// Init registers the interception layer and restores a subscription the
// platform lost, if the local hint says there was one and permission is
// already granted. It never prompts.
func (m *Manager) Init(ctx context.Context) error {
	if err := m.registrar.Register(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	wasSubscribed, err := m.session.PushSubscribed(ctx)
	if err != nil || !wasSubscribed {
		return err
	}

	live, err := m.IsSubscribed(ctx)
	if err != nil || live {
		return err
	}

	permission, err := m.platform.PermissionState(ctx)
	if err != nil {
		return fmt.Errorf("read permission: %w", err)
	}
	if permission != PermissionGranted {
		m.logger.Info().
			Str("func", "Manager.Init").
			Str("permission", string(permission)).
			Msg("subscription lost but permission not granted, skipping recovery")
		return nil
	}

	m.logger.Info().
		Str("func", "Manager.Init").
		Msg("restoring lost push subscription")
	_, err = m.subscribe(ctx)
	return err
}

// notifyAPI calls the API when a token is present. Failures are logged.
func (m *Manager) notifyAPI(ctx context.Context, fn string, sub models.PushSubscription, call func(context.Context, models.PushSubscription) error) {
	token, err := m.session.Token(ctx)
	if err != nil || token == "" {
		m.logger.Warn().Err(err).
			Str("func", fn).
			Msg("not logged in, push subscription not sent to the server")
		return
	}

	if err = call(ctx, sub); err != nil && !errors.Is(err, context.Canceled) {
		m.logger.Warn().Err(err).
			Str("func", fn).
			Str("endpoint", sub.Endpoint).
			Msg("server did not accept the push subscription change")
	}
}
