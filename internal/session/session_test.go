package session

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/mock"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryRepo is a map-backed session repository.
type memoryRepo map[string]string

func (m memoryRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memoryRepo) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memoryRepo) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func TestSession_Login(t *testing.T) {
	ctx := context.Background()
	repo := memoryRepo{}
	s := New(repo, logger.Nop())

	assert.False(t, s.IsAuthenticated(ctx))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.SetLogin(ctx, models.LoginResult{UserID: "user-1", Name: "Alice", Token: "tkn"}))
	assert.True(t, s.IsAuthenticated(ctx))
	assert.Equal(t, "tkn", repo[KeyToken])

	name, err := s.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	require.NoError(t, s.ClearLogin(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
	assert.Empty(t, repo)
}

func TestSession_PushSubscription(t *testing.T) {
	ctx := context.Background()
	repo := memoryRepo{}
	s := New(repo, logger.Nop())

	subscribed, err := s.PushSubscribed(ctx)
	require.NoError(t, err)
	assert.False(t, subscribed)

	sub := models.PushSubscription{
		Endpoint: "http://localhost:9000/push/abc",
		Keys:     models.PushKeys{P256dh: "p256", Auth: "auth"},
	}
	require.NoError(t, s.SetPushSubscription(ctx, sub))

	subscribed, err = s.PushSubscribed(ctx)
	require.NoError(t, err)
	assert.True(t, subscribed)
	assert.Equal(t, "true", repo[KeyPushSubscribed])

	got, found, err := s.PushSubscription(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sub, got)

	require.NoError(t, s.ClearPushSubscription(ctx))
	_, found, err = s.PushSubscription(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSession_CorruptSubscription(t *testing.T) {
	s := New(memoryRepo{KeyPushSubscription: "{"}, logger.Nop())

	_, found, err := s.PushSubscription(context.Background())
	assert.Error(t, err)
	assert.False(t, found)
}

func TestSession_Permission(t *testing.T) {
	ctx := context.Background()
	s := New(memoryRepo{}, logger.Nop())

	p, err := s.PushPermission(ctx)
	require.NoError(t, err)
	assert.Empty(t, p)

	require.NoError(t, s.SetPushPermission(ctx, "granted"))
	p, err = s.PushPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, "granted", p)
}

func TestSession_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	s := New(repo, logger.Nop())

	dbErr := errors.New("database is locked")
	repo.EXPECT().Get(gomock.Any(), KeyToken).Return("", false, dbErr).Times(2)
	repo.EXPECT().Set(gomock.Any(), KeyToken, "tkn").Return(dbErr)

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, s.IsAuthenticated(ctx))
	assert.ErrorIs(t, s.SetLogin(ctx, models.LoginResult{Token: "tkn"}), dbErr)
}
