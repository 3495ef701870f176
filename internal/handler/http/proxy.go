package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
)

// APIPrefix is the path under which the story API is proxied:
// /api/stories is forwarded to <api base>/stories.
const APIPrefix = "/api"

// newReverseProxy forwards requests to target through transport. The
// stripPrefix is removed from the incoming path before target's path is
// prepended.
func newReverseProxy(target *url.URL, stripPrefix string, transport http.RoundTripper, log *logger.Logger) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, stripPrefix)
			pr.Out.URL.RawPath = ""
			pr.SetURL(target)
			// the transport negotiates compression itself and hands back
			// plain bodies, which the interceptor stores
			pr.Out.Header.Del("Accept-Encoding")
		},
		Transport: transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.FromRequest(r).Err(err).
				Str("func", "reverseProxy.ErrorHandler").
				Str("target", target.Host).
				Str("uri", r.RequestURI).
				Msg("upstream request failed")
			utils.WriteJSON(w, models.APIResponse{Error: true, Message: "upstream unavailable"}, http.StatusBadGateway)
		},
	}
}

func (h *Handler) proxyAPI(w http.ResponseWriter, r *http.Request) {
	h.apiProxy.ServeHTTP(w, r)
}

func (h *Handler) proxyShell(w http.ResponseWriter, r *http.Request) {
	h.shellProxy.ServeHTTP(w, r)
}
