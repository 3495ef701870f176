package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/stretchr/testify/require"
)

const (
	testAPIBase     = "https://story-api.example/v1"
	testShellOrigin = "http://shell.example"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// recordingTransport answers every request with a fixed response and keeps
// the outbound requests.
type recordingTransport struct {
	mu       sync.Mutex
	requests []*http.Request

	status int
	header http.Header
	body   string
	err    error
}

func (t *recordingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, r)
	t.mu.Unlock()

	if t.err != nil {
		return nil, t.err
	}
	status := t.status
	if status == 0 {
		status = http.StatusOK
	}
	header := t.header.Clone()
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(t.body)),
		Request:    r,
	}, nil
}

func (t *recordingTransport) last() *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

type stubAppInfo struct {
	version      string
	cacheVersion string
}

func (s stubAppInfo) GetAppVersion(context.Context) string   { return s.version }
func (s stubAppInfo) GetCacheVersion(context.Context) string { return s.cacheVersion }

type stubReceiver struct {
	err  error
	msgs []push.Message
}

func (s *stubReceiver) Receive(_ context.Context, msg push.Message) error {
	s.msgs = append(s.msgs, msg)
	return s.err
}

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: testAPIBase},
		Proxy: config.ClientProxy{
			Address:      "localhost:8787",
			ShellOrigin:  testShellOrigin,
			CacheVersion: "berbagi-cerita-v1",
		},
	}
}

func newTestHandler(t *testing.T, deps Dependencies) *Handler {
	t.Helper()
	if deps.Transport == nil {
		deps.Transport = &recordingTransport{}
	}
	h, err := NewHandler(testConfig(), deps, logger.Nop())
	require.NoError(t, err)
	return h
}
