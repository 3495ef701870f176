package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

// statusRecorder remembers the status and body size written by the
// proxied handler. Only the first WriteHeader reaches the client.
type statusRecorder struct {
	http.ResponseWriter

	status int
	size   int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController; the
// reverse proxy flushes streamed bodies through it.
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// withLogging writes one access entry per request, including which cache
// strategy result served it.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rec.status).
			Int("size", rec.size).
			Str("cache", rec.Header().Get(cache.CacheStatusHeader)).
			Dur("duration", time.Since(start)).
			Send()
	})
}
