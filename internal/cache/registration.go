package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	"golang.org/x/sync/errgroup"
)

const installConcurrency = 4

// Registration owns the install and activate phases. Register runs them
// once; a failed install leaves the layer unregistered so the next call
// retries.
type Registration struct {
	storage  Storage
	names    Names
	manifest []string
	network  http.RoundTripper

	mu         sync.Mutex
	registered bool

	recorder Recorder
	logger   *logger.Logger
}

// NewRegistration resolves manifest entries against shellOrigin. Absolute
// entries (fonts, map library) are kept as they are.
func NewRegistration(names Names, shellOrigin string, manifest []string, storage Storage, network http.RoundTripper, recorder Recorder, logger *logger.Logger) (*Registration, error) {
	base, err := url.Parse(shellOrigin)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid shell origin %q", shellOrigin)
	}

	resolved := make([]string, 0, len(manifest))
	for _, entry := range manifest {
		ref, err := url.Parse(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid manifest entry %q: %w", entry, err)
		}
		resolved = append(resolved, base.ResolveReference(ref).String())
	}

	if network == nil {
		network = http.DefaultTransport
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &Registration{
		storage:  storage,
		names:    names,
		manifest: resolved,
		network:  network,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// Register installs and activates the layer unless that already
// succeeded.
func (r *Registration) Register(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.registered {
		return nil
	}
	if err := r.Install(ctx); err != nil {
		return err
	}
	if err := r.Activate(ctx); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "Registration.Register").
			Msg("activation left stale caches behind")
	}

	r.registered = true
	r.logger.Info().
		Str("shell_cache", r.names.Shell).
		Int("manifest", len(r.manifest)).
		Msg("interception layer registered")
	return nil
}

// Registered reports whether Register has succeeded.
func (r *Registration) Registered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registered
}

// Install fetches every manifest URL and stores them in the shell cache in
// one batch. Any failed or non-2xx fetch aborts the install and nothing is
// stored.
func (r *Registration) Install(ctx context.Context) error {
	entries := make([]models.CachedResponse, len(r.manifest))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(installConcurrency)
	for idx, target := range r.manifest {
		g.Go(func() error {
			entry, err := r.fetchManifestEntry(gctx, target)
			if err != nil {
				return err
			}
			entries[idx] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.recorder.RecordInstall(0, false)
		r.logger.Err(err).
			Str("func", "Registration.Install").
			Str("cache", r.names.Shell).
			Msg("install aborted")
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	if err := r.storage.Put(ctx, entries...); err != nil {
		r.recorder.RecordInstall(0, false)
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	r.recorder.RecordInstall(len(entries), true)
	return nil
}

func (r *Registration) fetchManifestEntry(ctx context.Context, target string) (models.CachedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return models.CachedResponse{}, err
	}

	resp, err := r.network.RoundTrip(req)
	if err != nil {
		return models.CachedResponse{}, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if !storable(resp.StatusCode) {
		return models.CachedResponse{}, fmt.Errorf("fetch %s: status %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.CachedResponse{}, fmt.Errorf("read %s: %w", target, err)
	}

	return models.CachedResponse{
		CacheName:  r.names.Shell,
		URL:        target,
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
		StoredAt:   time.Now().UTC(),
	}, nil
}

// Activate deletes every cache outside the allow-list. Running it again is
// harmless.
func (r *Registration) Activate(ctx context.Context) error {
	names, err := r.storage.CacheNames(ctx)
	if err != nil {
		return fmt.Errorf("list caches: %w", err)
	}

	var errs []error
	for _, name := range names {
		if r.names.Allowed(name) {
			continue
		}
		if err = r.storage.DeleteCache(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("delete cache %s: %w", name, err))
			continue
		}
		r.recorder.RecordEvicted(name)
		r.logger.Info().
			Str("func", "Registration.Activate").
			Str("cache", name).
			Msg("stale cache deleted")
	}

	return errors.Join(errs...)
}
