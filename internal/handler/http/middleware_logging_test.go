package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(cache.CacheStatusHeader, cache.ResultHit)
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("12345"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stories?page=2", nil)
	req.Header.Set(TraceIDHeader, "trace-1")
	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/stories?page=2", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.EqualValues(t, http.StatusAccepted, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Equal(t, cache.ResultHit, entry["cache"])
	assert.Equal(t, "trace-1", entry["trace_id"])
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec}

	sr.Write([]byte("ab"))
	sr.WriteHeader(http.StatusTeapot)
	sr.Write([]byte("cde"))

	assert.Equal(t, http.StatusOK, sr.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, sr.size)
	assert.Equal(t, "abcde", rec.Body.String())
	assert.Same(t, rec, sr.Unwrap())
}

func TestStatusRecorder_NoBody(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec}

	sr.WriteHeader(http.StatusNotModified)

	assert.Equal(t, http.StatusNotModified, sr.status)
	assert.Zero(t, sr.size)
}
