// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package push

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receiverFixture struct {
	server     *httptest.Server
	repo       *memoryRepo
	platform   *LocalPlatform
	receiver   *Receiver
	dispatcher *recordingDispatcher
	vapid      VAPIDKeys

	mu       sync.Mutex
	lastBody []byte
	lastErr  error
}

func (f *receiverFixture) last() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody, f.lastErr
}

// newReceiverFixture starts a push endpoint backed by a real receiver.
func newReceiverFixture(t *testing.T) *receiverFixture {
	t.Helper()

	f := &receiverFixture{repo: &memoryRepo{}, dispatcher: &recordingDispatcher{}}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		err := f.receiver.Receive(r.Context(), Message{
			SubscriptionID:  strings.TrimPrefix(r.URL.Path, EndpointPath),
			ContentEncoding: r.Header.Get("Content-Encoding"),
			Authorization:   r.Header.Get("Authorization"),
			Body:            body,
		})

		f.mu.Lock()
		f.lastBody, f.lastErr = body, err
		f.mu.Unlock()

		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(f.server.Close)

	var err error
	f.vapid, err = GenerateVAPIDKeys()
	require.NoError(t, err)

	f.platform = NewLocalPlatform(f.repo, &memoryPermissions{value: string(PermissionGranted)}, nil, f.server.URL, logger.Nop())
	f.receiver, err = NewReceiver(f.repo, f.dispatcher, f.server.URL, logger.Nop())
	require.NoError(t, err)
	return f
}

func (f *receiverFixture) send(t *testing.T, sub models.PushSubscription, payload []byte, vapid VAPIDKeys) int {
	t.Helper()

	resp, err := webpush.SendNotification(payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys:     webpush.Keys{Auth: sub.Keys.Auth, P256dh: sub.Keys.P256dh},
	}, &webpush.Options{
		HTTPClient:      f.server.Client(),
		Subscriber:      "stories@example.com",
		TTL:             60,
		VAPIDPublicKey:  vapid.PublicKey,
		VAPIDPrivateKey: vapid.PrivateKey,
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestReceiver_DecryptsWebPushMessages(t *testing.T) {
	f := newReceiverFixture(t)
	sub, err := f.platform.Subscribe(context.Background(), f.vapid.PublicKey)
	require.NoError(t, err)

	payload := `{"title":"Story baru","body":"Alice shared a story","storyId":"story-1"}`
	status := f.send(t, sub, []byte(payload), f.vapid)

	_, err = f.last()
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	require.Len(t, f.dispatcher.received(), 1)
	assert.Equal(t, payload, string(f.dispatcher.received()[0]))
}

func TestReceiver_RejectsForeignVAPIDKey(t *testing.T) {
	f := newReceiverFixture(t)
	sub, err := f.platform.Subscribe(context.Background(), f.vapid.PublicKey)
	require.NoError(t, err)

	intruder, err := GenerateVAPIDKeys()
	require.NoError(t, err)

	status := f.send(t, sub, []byte("hi"), intruder)

	assert.Equal(t, http.StatusBadRequest, status)
	_, err = f.last()
	assert.ErrorIs(t, err, ErrInvalidAuthorization)
	assert.Empty(t, f.dispatcher.received())
}

func TestReceiver_TamperedBody(t *testing.T) {
	f := newReceiverFixture(t)
	sub, err := f.platform.Subscribe(context.Background(), f.vapid.PublicKey)
	require.NoError(t, err)
	f.send(t, sub, []byte("hi"), f.vapid)
	sent, err := f.last()
	require.NoError(t, err)

	stored, _, err := f.repo.GetActiveSubscription(context.Background())
	require.NoError(t, err)

	body := append([]byte(nil), sent...)
	body[len(body)-1] ^= 0xff

	_, err = Decrypt(stored, body)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = Decrypt(stored, body[:10])
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestReceiver_Receive(t *testing.T) {
	ctx := context.Background()
	f := newReceiverFixture(t)

	// Subscriptions made without a server key accept unauthenticated
	// messages.
	sub, err := f.platform.Subscribe(ctx, "")
	require.NoError(t, err)
	id := strings.TrimPrefix(sub.Endpoint, f.server.URL+EndpointPath)

	err = f.receiver.Receive(ctx, Message{SubscriptionID: "missing"})
	assert.ErrorIs(t, err, ErrUnknownSubscription)

	err = f.receiver.Receive(ctx, Message{SubscriptionID: id, ContentEncoding: "aesgcm", Body: []byte("x")})
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	require.NoError(t, f.receiver.Receive(ctx, Message{SubscriptionID: id}))
	require.Len(t, f.dispatcher.received(), 1)
	assert.Empty(t, f.dispatcher.received()[0], "push without payload")
}

func TestReceiver_VerifyVAPIDHeader(t *testing.T) {
	r, err := NewReceiver(&memoryRepo{}, &recordingDispatcher{}, "http://localhost:9000", logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "wrong scheme", header: "Bearer abc"},
		{name: "no token", header: "vapid k=key"},
		{name: "other key", header: "vapid t=a.b.c, k=other"},
		{name: "bad token", header: "vapid t=a.b.c, k=key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.verifyVAPID(tt.header, "key"), ErrInvalidAuthorization)
		})
	}
}

func TestNewReceiver_InvalidURL(t *testing.T) {
	_, err := NewReceiver(&memoryRepo{}, &recordingDispatcher{}, "/push", logger.Nop())
	assert.Error(t, err)
}

func TestUnpad(t *testing.T) {
	tests := []struct {
		name    string
		record  []byte
		last    bool
		want    string
		wantErr bool
	}{
		{name: "last record", record: []byte("hi\x02\x00\x00"), last: true, want: "hi"},
		{name: "inner record", record: []byte("hi\x01"), last: false, want: "hi"},
		{name: "empty content", record: []byte("\x02"), last: true, want: ""},
		{name: "wrong delimiter", record: []byte("hi\x01\x00"), last: true, wantErr: true},
		{name: "only padding", record: []byte("\x00\x00"), last: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unpad(tt.record, tt.last)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRecordNonce(t *testing.T) {
	base := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	assert.Equal(t, base, recordNonce(base, 0))
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10}, recordNonce(base, 1))
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, base, "base nonce is not modified")
}
