package push_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/mock"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const serverKey = "BOr4mQ-server-key"

type managerMocks struct {
	registrar *mock.MockRegistrar
	platform  *mock.MockPlatform
	api       *mock.MockAPI
	session   *mock.MockSession
}

func newTestManager(t *testing.T) (*push.Manager, managerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := managerMocks{
		registrar: mock.NewMockRegistrar(ctrl),
		platform:  mock.NewMockPlatform(ctrl),
		api:       mock.NewMockAPI(ctrl),
		session:   mock.NewMockSession(ctrl),
	}
	return push.NewManager(m.registrar, m.platform, m.api, m.session, serverKey, logger.Nop()), m
}

var testSubscription = models.PushSubscription{
	Endpoint: "http://localhost:9000/push/0190c7d2",
	Keys:     models.PushKeys{P256dh: "BNc", Auth: "aGk"},
}

func TestManager_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("subscribes and registers with the server", func(t *testing.T) {
		manager, m := newTestManager(t)
		gomock.InOrder(
			m.registrar.EXPECT().Register(ctx).Return(nil),
			m.platform.EXPECT().RequestPermission(ctx).Return(push.PermissionGranted, nil),
			m.platform.EXPECT().Subscribe(ctx, serverKey).Return(testSubscription, nil),
			m.session.EXPECT().Token(ctx).Return("tkn", nil),
			m.api.EXPECT().SubscribePush(ctx, testSubscription).Return(nil),
			m.session.EXPECT().SetPushSubscription(ctx, testSubscription).Return(nil),
		)

		sub, err := manager.Subscribe(ctx)
		require.NoError(t, err)
		assert.Equal(t, testSubscription, sub)
	})

	t.Run("server failure keeps the platform subscription", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.platform.EXPECT().RequestPermission(ctx).Return(push.PermissionGranted, nil)
		m.platform.EXPECT().Subscribe(ctx, serverKey).Return(testSubscription, nil)
		m.session.EXPECT().Token(ctx).Return("tkn", nil)
		m.api.EXPECT().SubscribePush(ctx, testSubscription).Return(errors.New("500"))
		m.session.EXPECT().SetPushSubscription(ctx, testSubscription).Return(nil)
		m.platform.EXPECT().Unsubscribe(gomock.Any()).Times(0)

		_, err := manager.Subscribe(ctx)
		require.NoError(t, err)
	})

	t.Run("logged out skips the server", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.platform.EXPECT().RequestPermission(ctx).Return(push.PermissionGranted, nil)
		m.platform.EXPECT().Subscribe(ctx, serverKey).Return(testSubscription, nil)
		m.session.EXPECT().Token(ctx).Return("", nil)
		m.session.EXPECT().SetPushSubscription(ctx, testSubscription).Return(nil)

		_, err := manager.Subscribe(ctx)
		require.NoError(t, err)
	})

	t.Run("permission denied", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.platform.EXPECT().RequestPermission(ctx).Return(push.PermissionDenied, nil)

		_, err := manager.Subscribe(ctx)
		assert.ErrorIs(t, err, push.ErrPermissionDenied)
	})

	t.Run("interception layer not ready", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(errors.New("install failed"))

		_, err := manager.Subscribe(ctx)
		assert.ErrorIs(t, err, push.ErrNotReady)
	})

	t.Run("platform failure", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.platform.EXPECT().RequestPermission(ctx).Return(push.PermissionGranted, nil)
		m.platform.EXPECT().Subscribe(ctx, serverKey).Return(models.PushSubscription{}, push.ErrServerKeyMismatch)

		_, err := manager.Subscribe(ctx)
		assert.ErrorIs(t, err, push.ErrServerKeyMismatch)
	})
}

func TestManager_UnsubscribeTwice(t *testing.T) {
	ctx := context.Background()
	manager, m := newTestManager(t)

	gomock.InOrder(
		m.platform.EXPECT().GetSubscription(ctx).Return(testSubscription, true, nil),
		m.platform.EXPECT().Unsubscribe(ctx).Return(true, nil),
		m.session.EXPECT().Token(ctx).Return("tkn", nil),
		m.api.EXPECT().UnsubscribePush(ctx, testSubscription).Return(errors.New("503")),
		m.session.EXPECT().ClearPushSubscription(ctx).Return(nil),

		m.platform.EXPECT().GetSubscription(ctx).Return(models.PushSubscription{}, false, nil),
		m.session.EXPECT().ClearPushSubscription(ctx).Return(nil),
	)

	require.NoError(t, manager.Unsubscribe(ctx))
	require.NoError(t, manager.Unsubscribe(ctx))
}

func TestManager_UnsubscribePlatformError(t *testing.T) {
	ctx := context.Background()
	manager, m := newTestManager(t)

	m.platform.EXPECT().GetSubscription(ctx).Return(testSubscription, true, nil)
	m.platform.EXPECT().Unsubscribe(ctx).Return(false, errors.New("disk I/O error"))

	assert.Error(t, manager.Unsubscribe(ctx))
}

func TestManager_IsSubscribedAsksPlatform(t *testing.T) {
	ctx := context.Background()
	manager, m := newTestManager(t)

	m.platform.EXPECT().GetSubscription(ctx).Return(models.PushSubscription{}, false, nil)
	m.session.EXPECT().PushSubscribed(gomock.Any()).Times(0)

	subscribed, err := manager.IsSubscribed(ctx)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestManager_Init(t *testing.T) {
	ctx := context.Background()

	t.Run("never subscribed", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.session.EXPECT().PushSubscribed(ctx).Return(false, nil)

		require.NoError(t, manager.Init(ctx))
	})

	t.Run("subscription still live", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.session.EXPECT().PushSubscribed(ctx).Return(true, nil)
		m.platform.EXPECT().GetSubscription(ctx).Return(testSubscription, true, nil)

		require.NoError(t, manager.Init(ctx))
	})

	t.Run("lost subscription is restored", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.session.EXPECT().PushSubscribed(ctx).Return(true, nil)
		m.platform.EXPECT().GetSubscription(ctx).Return(models.PushSubscription{}, false, nil)
		m.platform.EXPECT().PermissionState(ctx).Return(push.PermissionGranted, nil)
		m.platform.EXPECT().Subscribe(ctx, serverKey).Return(testSubscription, nil)
		m.session.EXPECT().Token(ctx).Return("tkn", nil)
		m.api.EXPECT().SubscribePush(ctx, testSubscription).Return(nil)
		m.session.EXPECT().SetPushSubscription(ctx, testSubscription).Return(nil)

		require.NoError(t, manager.Init(ctx))
	})

	t.Run("recovery never prompts", func(t *testing.T) {
		manager, m := newTestManager(t)
		m.registrar.EXPECT().Register(ctx).Return(nil)
		m.session.EXPECT().PushSubscribed(ctx).Return(true, nil)
		m.platform.EXPECT().GetSubscription(ctx).Return(models.PushSubscription{}, false, nil)
		m.platform.EXPECT().PermissionState(ctx).Return(push.PermissionDefault, nil)
		m.platform.EXPECT().RequestPermission(gomock.Any()).Times(0)
		m.platform.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, manager.Init(ctx))
	})
}
