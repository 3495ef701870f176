package http

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/utils"
)

// withETag buffers successful GET responses, tags them with a SHA-256
// entity tag and answers a matching If-None-Match with 304.
func (h *Handler) withETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		bw := &bufferedWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		status := bw.status
		if status == 0 {
			status = http.StatusOK
		}

		if status == http.StatusOK {
			etag := w.Header().Get("ETag")
			if etag == "" {
				etag = utils.ETag(bw.body.Bytes())
				w.Header().Set("ETag", etag)
			}

			if etagMatches(r.Header.Get("If-None-Match"), etag) {
				h.logger.Debug().
					Str("func", "*Handler.withETag").
					Str("etag", etag).
					Msg("entity not modified")
				w.Header().Del("Content-Length")
				w.Header().Del("Content-Type")
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}

		w.WriteHeader(status)
		w.Write(bw.body.Bytes())
	})
}

// bufferedWriter holds the status and body until the wrapped handler
// returns. Headers go straight to the underlying writer's map.
type bufferedWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}
