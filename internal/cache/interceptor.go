// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	"golang.org/x/sync/singleflight"
)

const (
	// CacheStatusHeader tells whether a response came from a cache.
	CacheStatusHeader = "X-Story-Keeper-Cache"

	// ShellDocumentPath is served for navigations that neither the cache
	// nor the network can answer.
	ShellDocumentPath = "/index.html"

	defaultRevalidateTimeout = 30 * time.Second
)

// InterceptorConfig describes what the interceptor routes where.
type InterceptorConfig struct {
	// APIBaseURL is any URL on the story API; only its origin is used.
	APIBaseURL string
	// ShellOrigin is where the application shell is served from.
	ShellOrigin string
	Names       Names
	// RevalidateTimeout bounds a background refresh. Zero means 30s.
	RevalidateTimeout time.Duration
}

// Interceptor is an http.RoundTripper applying the caching strategies.
// It is safe for concurrent use. Call Close to wait for background
// revalidations.
type Interceptor struct {
	next    http.RoundTripper
	storage Storage
	names   Names

	apiOrigin     string
	shellDocument string

	revalidateTimeout time.Duration

	group singleflight.Group

	// mu guards closed and every wg.Add against a concurrent Close.
	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool

	recorder Recorder
	logger   *logger.Logger
}

// NewInterceptor constructs an [Interceptor] in front of next. A nil next
// selects http.DefaultTransport and a nil recorder disables metrics.
func NewInterceptor(cfg InterceptorConfig, storage Storage, next http.RoundTripper, recorder Recorder, logger *logger.Logger) (*Interceptor, error) {
	apiURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil || apiURL.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", cfg.APIBaseURL)
	}

	shellDocument := ""
	if cfg.ShellOrigin != "" {
		shellURL, err := url.Parse(cfg.ShellOrigin)
		if err != nil || shellURL.Host == "" {
			return nil, fmt.Errorf("invalid shell origin %q", cfg.ShellOrigin)
		}
		shellDocument = shellURL.ResolveReference(&url.URL{Path: ShellDocumentPath}).String()
	}

	if next == nil {
		next = http.DefaultTransport
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if cfg.Names == (Names{}) {
		cfg.Names = NewNames("")
	}
	if cfg.RevalidateTimeout <= 0 {
		cfg.RevalidateTimeout = defaultRevalidateTimeout
	}

	return &Interceptor{
		next:              next,
		storage:           storage,
		names:             cfg.Names,
		apiOrigin:         origin(apiURL),
		shellDocument:     shellDocument,
		revalidateTimeout: cfg.RevalidateTimeout,
		recorder:          recorder,
		logger:            logger,
	}, nil
}

// RoundTrip implements http.RoundTripper.
func (i *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	if origin(req.URL) == i.apiOrigin {
		return i.staleWhileRevalidate(req)
	}
	return i.cacheFirst(req)
}

// Close stops new background revalidations and waits for running ones.
func (i *Interceptor) Close() error {
	i.mu.Lock()
	i.closed = true
	i.mu.Unlock()

	i.wg.Wait()
	return nil
}

// track registers one unit of background work. It reports false once the
// interceptor is closed.
func (i *Interceptor) track() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return false
	}
	i.wg.Add(1)
	return true
}

// staleWhileRevalidate answers API requests. A cached GET is returned at
// once while the network refreshes it in the background; a miss waits for
// the network. Unreachable network without a cached copy yields the offline
// response.
func (i *Interceptor) staleWhileRevalidate(req *http.Request) (*http.Response, error) {
	log := logger.FromContext(req.Context())

	if req.Method != http.MethodGet {
		resp, err := i.next.RoundTrip(req)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "Interceptor.staleWhileRevalidate").
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Msg("api unreachable")
			i.recorder.RecordRequest(StrategyPassThrough, ResultOffline)
			return offlineResponse(req), nil
		}
		i.recorder.RecordRequest(StrategyPassThrough, ResultMiss)
		return resp, nil
	}

	key := req.URL.String()
	if cached, found := i.match(req.Context(), i.names.API, key); found {
		i.revalidate(req, key)
		i.recorder.RecordRequest(StrategyStaleWhileRevalidate, ResultHit)
		return toResponse(cached, req, ResultHit), nil
	}

	entry, err := i.sharedFetch(req, key)
	if err != nil && req.Context().Err() != nil {
		return nil, err
	}
	if err != nil {
		log.Warn().Err(err).
			Str("func", "Interceptor.staleWhileRevalidate").
			Str("url", key).
			Msg("api unreachable and nothing cached")
		i.recorder.RecordRequest(StrategyStaleWhileRevalidate, ResultOffline)
		return offlineResponse(req), nil
	}

	i.recorder.RecordRequest(StrategyStaleWhileRevalidate, ResultMiss)
	return toResponse(entry, req, ResultMiss), nil
}

// sharedFetch loads key from the network for a cache miss. Concurrent
// misses share one call, which runs detached from any single caller so that
// one caller giving up does not fail the others. Each caller still returns
// as soon as its own context is done.
func (i *Interceptor) sharedFetch(req *http.Request, key string) (models.CachedResponse, error) {
	if !i.track() {
		return i.fetch(req, i.names.API, key)
	}

	ch := i.group.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), i.revalidateTimeout)
		defer cancel()
		return i.fetch(req.Clone(ctx), i.names.API, key)
	})

	select {
	case res := <-ch:
		i.wg.Done()
		if res.Err != nil {
			return models.CachedResponse{}, res.Err
		}
		return res.Val.(models.CachedResponse), nil
	case <-req.Context().Done():
		// keep Close waiting until the shared call finishes
		go func() {
			<-ch
			i.wg.Done()
		}()
		return models.CachedResponse{}, req.Context().Err()
	}
}

// revalidate refreshes key in the background. Concurrent refreshes of the
// same key share one network call.
func (i *Interceptor) revalidate(req *http.Request, key string) {
	if !i.track() {
		return
	}

	go func() {
		defer i.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), i.revalidateTimeout)
		defer cancel()

		_, err, _ := i.group.Do(key, func() (any, error) {
			return i.fetch(req.Clone(ctx), i.names.API, key)
		})
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).
				Str("func", "Interceptor.revalidate").
				Str("url", key).
				Msg("background revalidation failed, keeping cached copy")
		}
		i.recorder.RecordRevalidation(err == nil)
	}()
}

// cacheFirst answers every non-API request from any owned cache, then from
// the network (storing a copy in the assets cache). A navigation that fails
// both ways gets the cached shell document.
func (i *Interceptor) cacheFirst(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		i.recorder.RecordRequest(StrategyPassThrough, ResultMiss)
		return i.next.RoundTrip(req)
	}

	ctx := req.Context()
	key := req.URL.String()

	for _, name := range i.names.lookupOrder() {
		if cached, found := i.match(ctx, name, key); found {
			i.recorder.RecordRequest(StrategyCacheFirst, ResultHit)
			return toResponse(cached, req, ResultHit), nil
		}
	}

	entry, err := i.fetch(req, i.names.Assets, key)
	if err == nil {
		i.recorder.RecordRequest(StrategyCacheFirst, ResultMiss)
		return toResponse(entry, req, ResultMiss), nil
	}

	if isNavigation(req) && i.shellDocument != "" {
		for _, name := range i.names.lookupOrder() {
			if shell, found := i.match(ctx, name, i.shellDocument); found {
				i.recorder.RecordRequest(StrategyCacheFirst, ResultFallback)
				return toResponse(shell, req, ResultFallback), nil
			}
		}
	}

	i.recorder.RecordRequest(StrategyCacheFirst, ResultError)
	return nil, err
}

// fetch performs req and buffers the response. Successful GET responses
// are stored under cacheName; storage failures are logged and ignored.
func (i *Interceptor) fetch(req *http.Request, cacheName, key string) (models.CachedResponse, error) {
	resp, err := i.next.RoundTrip(req)
	if err != nil {
		return models.CachedResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.CachedResponse{}, fmt.Errorf("read response body: %w", err)
	}

	entry := models.CachedResponse{
		CacheName:  cacheName,
		URL:        key,
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
		StoredAt:   time.Now().UTC(),
	}

	if req.Method == http.MethodGet && storable(resp.StatusCode) {
		if err = i.storage.Put(req.Context(), entry); err != nil {
			logger.FromContext(req.Context()).Warn().Err(err).
				Str("func", "Interceptor.fetch").
				Str("cache", cacheName).
				Str("url", key).
				Msg("failed to store response")
		}
	}

	return entry, nil
}

// match looks key up in cacheName. Storage errors count as a miss.
func (i *Interceptor) match(ctx context.Context, cacheName, key string) (models.CachedResponse, bool) {
	cached, found, err := i.storage.Match(ctx, cacheName, key)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "Interceptor.match").
			Str("cache", cacheName).
			Str("url", key).
			Msg("cache lookup failed")
		return models.CachedResponse{}, false
	}
	return cached, found
}

func storable(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// isNavigation reports whether req loads a page rather than a subresource.
func isNavigation(req *http.Request) bool {
	if req.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return req.Method == http.MethodGet && strings.Contains(req.Header.Get("Accept"), "text/html")
}

// origin returns scheme://host:port with the default port made explicit.
func origin(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	port := u.Port()
	if port == "" {
		switch scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		}
	}
	return scheme + "://" + strings.ToLower(u.Hostname()) + ":" + port
}

func toResponse(entry models.CachedResponse, req *http.Request, cacheStatus string) *http.Response {
	header := entry.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set("Content-Length", strconv.Itoa(len(entry.Body)))
	header.Set(CacheStatusHeader, cacheStatus)

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", entry.StatusCode, http.StatusText(entry.StatusCode)),
		StatusCode:    entry.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(entry.Body)),
		ContentLength: int64(len(entry.Body)),
		Request:       req,
	}
}

// offlineResponse is the canned answer for an unreachable API.
func offlineResponse(req *http.Request) *http.Response {
	body := models.OfflineResponseBody()
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(len(body)))
	header.Set(models.OfflineHeader, "1")
	header.Set(CacheStatusHeader, ResultOffline)

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)),
		StatusCode:    http.StatusServiceUnavailable,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
