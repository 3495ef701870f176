package push

import (
	"context"
	"crypto/ecdh"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPlatform_RequestPermission(t *testing.T) {
	ctx := context.Background()

	prompts := 0
	answer := false
	perms := &memoryPermissions{}
	p := NewLocalPlatform(&memoryRepo{}, perms, func(context.Context) (bool, error) {
		prompts++
		return answer, nil
	}, "http://localhost:9000", logger.Nop())

	state, err := p.PermissionState(ctx)
	require.NoError(t, err)
	assert.Equal(t, PermissionDefault, state)

	state, err = p.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, PermissionDenied, state)

	answer = true
	state, err = p.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, PermissionDenied, state, "a denial sticks")
	assert.Equal(t, 1, prompts)
}

func TestLocalPlatform_PromptError(t *testing.T) {
	p := NewLocalPlatform(&memoryRepo{}, &memoryPermissions{}, func(context.Context) (bool, error) {
		return false, errors.New("no terminal")
	}, "http://localhost:9000", logger.Nop())

	state, err := p.RequestPermission(context.Background())
	assert.Error(t, err)
	assert.Equal(t, PermissionDefault, state)
}

func TestLocalPlatform_SubscribeRequiresPermission(t *testing.T) {
	p := NewLocalPlatform(&memoryRepo{}, &memoryPermissions{}, nil, "http://localhost:9000", logger.Nop())

	_, err := p.Subscribe(context.Background(), "key")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestLocalPlatform_SubscriptionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	p := NewLocalPlatform(repo, &memoryPermissions{value: string(PermissionGranted)}, nil, "http://localhost:9000/", logger.Nop())

	_, found, err := p.GetSubscription(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	sub, err := p.Subscribe(ctx, "server-key")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sub.Endpoint, "http://localhost:9000/push/"), sub.Endpoint)

	pub, err := base64.RawURLEncoding.DecodeString(sub.Keys.P256dh)
	require.NoError(t, err)
	_, err = ecdh.P256().NewPublicKey(pub)
	require.NoError(t, err, "p256dh must be an uncompressed P-256 point")

	auth, err := base64.RawURLEncoding.DecodeString(sub.Keys.Auth)
	require.NoError(t, err)
	assert.Len(t, auth, authSecretSize)

	again, err := p.Subscribe(ctx, "server-key")
	require.NoError(t, err)
	assert.Equal(t, sub, again, "subscribing twice returns the live subscription")

	_, err = p.Subscribe(ctx, "other-key")
	assert.ErrorIs(t, err, ErrServerKeyMismatch)

	live, found, err := p.GetSubscription(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sub, live)

	dropped, err := p.Unsubscribe(ctx)
	require.NoError(t, err)
	assert.True(t, dropped)

	dropped, err = p.Unsubscribe(ctx)
	require.NoError(t, err)
	assert.False(t, dropped)
}
