package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_Healthz(t *testing.T) {
	router := newTestHandler(t, Dependencies{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(TraceIDHeader))
}

func TestRoutes_Version(t *testing.T) {
	router := newTestHandler(t, Dependencies{
		AppInfo: stubAppInfo{version: "1.2.0", cacheVersion: "berbagi-cerita-v1"},
	}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sw/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got versionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, versionResponse{Version: "1.2.0", CacheVersion: "berbagi-cerita-v1"}, got)
}

func TestRoutes_VersionWithoutAppInfoIsProxied(t *testing.T) {
	transport := &recordingTransport{body: "shell"}
	router := newTestHandler(t, Dependencies{Transport: transport}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sw/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, transport.last())
	assert.Equal(t, "shell.example", transport.last().URL.Host)
}

func TestRoutes_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cache.NewCollector(reg).RecordRequest(cache.StrategyCacheFirst, cache.ResultHit)

	router := newTestHandler(t, Dependencies{Metrics: cache.MetricsHandler(reg)}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `story_keeper_cache_requests_total{result="hit",strategy="cache_first"} 1`)
}
