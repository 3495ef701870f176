package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/internal/service"
)

// PushReceiver accepts messages addressed to a local push endpoint.
type PushReceiver interface {
	Receive(ctx context.Context, msg push.Message) error
}

// Dependencies are the collaborators the proxy serves.
type Dependencies struct {
	AppInfo service.AppInfoService
	// Transport is the caching interceptor.
	Transport http.RoundTripper
	Receiver  PushReceiver
	// Metrics serves /metrics. A nil handler leaves the route out.
	Metrics http.Handler
}

type Handler struct {
	appInfo  service.AppInfoService
	receiver PushReceiver
	metrics  http.Handler

	apiProxy   *httputil.ReverseProxy
	shellProxy *httputil.ReverseProxy

	logger *logger.Logger
}

func NewHandler(cfg *config.ClientConfig, deps Dependencies, logger *logger.Logger) (*Handler, error) {
	if deps.Transport == nil {
		return nil, ErrNoTransport
	}

	apiURL, err := parseUpstream(cfg.Adapter.BaseURL)
	if err != nil {
		return nil, err
	}
	shellURL, err := parseUpstream(cfg.Proxy.ShellOrigin)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		appInfo:    deps.AppInfo,
		receiver:   deps.Receiver,
		metrics:    deps.Metrics,
		apiProxy:   newReverseProxy(apiURL, APIPrefix, deps.Transport, logger),
		shellProxy: newReverseProxy(shellURL, "", deps.Transport, logger),
		logger:     logger,
	}, nil
}

func parseUpstream(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUpstream, raw)
	}
	return u, nil
}
