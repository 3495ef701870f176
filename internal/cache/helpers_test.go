package cache

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

const (
	testAPIBase     = "https://story-api.dicoding.dev/v1"
	testShellOrigin = "http://localhost:9000"
)

var errNetworkDown = errors.New("dial tcp: connection refused")

type testInterceptor struct {
	*Interceptor
	storage   Storage
	transport *httpmock.MockTransport
}

func newTestInterceptor(t *testing.T) testInterceptor {
	t.Helper()

	storage := NewMemoryStorage(logger.Nop())
	transport := httpmock.NewMockTransport()

	i, err := NewInterceptor(InterceptorConfig{
		APIBaseURL:  testAPIBase,
		ShellOrigin: testShellOrigin,
		Names:       NewNames(""),
	}, storage, transport, nil, logger.Nop())
	require.NoError(t, err)

	return testInterceptor{Interceptor: i, storage: storage, transport: transport}
}

func put(t *testing.T, s Storage, cacheName, url, body string) {
	t.Helper()
	require.NoError(t, s.Put(context.Background(), models.CachedResponse{
		CacheName:  cacheName,
		URL:        url,
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"text/plain"}},
		Body:       []byte(body),
	}))
}

func get(t *testing.T, rt http.RoundTripper, url string, header ...string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := rt.RoundTrip(req)
	if err != nil {
		return nil, ""
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func stored(t *testing.T, s Storage, cacheName, url string) (string, bool) {
	t.Helper()
	entry, found, err := s.Match(context.Background(), cacheName, url)
	require.NoError(t, err)
	return string(entry.Body), found
}

// brokenStorage fails every call.
type brokenStorage struct{}

func (brokenStorage) Put(context.Context, ...models.CachedResponse) error { return errors.New("disk full") }
func (brokenStorage) Match(context.Context, string, string) (models.CachedResponse, bool, error) {
	return models.CachedResponse{}, false, errors.New("disk full")
}
func (brokenStorage) CacheNames(context.Context) ([]string, error) { return nil, errors.New("disk full") }
func (brokenStorage) DeleteCache(context.Context, string) error     { return errors.New("disk full") }
