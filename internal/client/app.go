package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-story-keeper/internal/adapter"
	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/handler"
	httphandler "github.com/MKhiriev/go-story-keeper/internal/handler/http"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/notify"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/internal/server"
	"github.com/MKhiriev/go-story-keeper/internal/service"
	"github.com/MKhiriev/go-story-keeper/internal/session"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/internal/tui"
	"github.com/MKhiriev/go-story-keeper/internal/workers"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Options select how the client runs.
type Options struct {
	// Headless runs the proxy and the worker without the terminal UI.
	Headless bool
	// StartPage is the route the UI opens on, e.g. "/favorites".
	StartPage string
	BuildInfo models.AppBuildInfo
}

type App struct {
	cfg  *config.ClientConfig
	opts Options

	storages     *store.ClientStorages
	interceptor  *cache.Interceptor
	registration *cache.Registration
	worker       *cache.Worker
	services     *service.Services
	server       server.Server
	ui           *tui.TUI

	logger *logger.Logger
}

// NewApp wires every component. The local database opens on first use.
// The caller owns the returned App and must call Close.
func NewApp(ctx context.Context, cfg *config.ClientConfig, opts Options, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app := &App{cfg: cfg, opts: opts, storages: storages, logger: logger}
	if err = app.wire(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) wire() error {
	cfg, log := a.cfg, a.logger

	registry := prometheus.NewRegistry()
	collector := cache.NewCollector(registry)

	cacheStorage, err := cache.NewStorage(cfg.Storage.CacheBackend, a.storages.CacheRepository, log)
	if err != nil {
		return fmt.Errorf("create cache storage: %w", err)
	}
	names := cache.NewNames(cfg.Proxy.CacheVersion)

	a.interceptor, err = cache.NewInterceptor(cache.InterceptorConfig{
		APIBaseURL:        cfg.Adapter.BaseURL,
		ShellOrigin:       cfg.Proxy.ShellOrigin,
		Names:             names,
		RevalidateTimeout: cfg.Adapter.RequestTimeout,
	}, cacheStorage, http.DefaultTransport, collector, log)
	if err != nil {
		return fmt.Errorf("create cache interceptor: %w", err)
	}

	a.registration, err = cache.NewRegistration(names, cfg.Proxy.ShellOrigin, cfg.Proxy.Manifest, cacheStorage, http.DefaultTransport, collector, log)
	if err != nil {
		return fmt.Errorf("create shell registration: %w", err)
	}

	sess := session.New(a.storages.SessionRepository, log)

	api, err := adapter.NewHTTPStoryAPI(cfg.Adapter, sess, a.interceptor, log)
	if err != nil {
		return fmt.Errorf("create story api adapter: %w", err)
	}

	toasts := notify.NewToasts(cfg.Workers.EventBuffer, log)
	notifier := notify.Multi{toasts}
	shoutrrrNotifier, err := notify.NewShoutrrrNotifier(cfg.Notifications.URLs, cfg.Proxy.ShellOrigin, log)
	switch {
	case err == nil:
		notifier = append(notifier, shoutrrrNotifier)
	case !errors.Is(err, notify.ErrNoServices):
		return fmt.Errorf("create notifier: %w", err)
	}
	clients := notify.NewClients(cfg.Proxy.ShellOrigin, notify.BrowserOpener, log)

	syncService := service.NewSyncService(api, a.storages.OfflineStoryRepository, sess, cfg.Workers.SyncPause, log)
	a.worker = cache.NewWorker(cfg.Workers.EventBuffer, notifier, clients, syncService, collector, log)

	platform := push.NewLocalPlatform(a.storages.PushSubscriptionRepository, sess, nil, cfg.Push.ReceiverURL, log)
	manager := push.NewManager(a.registration, platform, api, sess, cfg.Push.VAPIDPublicKey, log)

	receiver, err := push.NewReceiver(a.storages.PushSubscriptionRepository, a.worker, cfg.Push.ReceiverURL, log)
	if err != nil {
		return fmt.Errorf("create push receiver: %w", err)
	}

	a.services, err = service.NewServices(cfg, service.Dependencies{
		API:         api,
		Storages:    a.storages,
		Session:     sess,
		Sync:        syncService,
		Registrar:   a.worker,
		PushManager: manager,
		Platform:    platform,
		Notifier:    notifier,
	}, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	if cfg.Proxy.Address != "" {
		handlers, err := handler.NewHandlers(cfg, httphandler.Dependencies{
			AppInfo:   a.services.AppInfoService,
			Transport: a.interceptor,
			Receiver:  receiver,
			Metrics:   cache.MetricsHandler(registry),
		}, log)
		if err != nil {
			return fmt.Errorf("create handlers: %w", err)
		}
		if a.server, err = server.NewServer(handlers, cfg.Proxy, log); err != nil {
			return fmt.Errorf("create proxy server: %w", err)
		}
	}

	if !a.opts.Headless {
		a.ui, err = tui.New(tui.Dependencies{
			Auth:        a.services.AuthService,
			Stories:     a.services.StoryService,
			Favorites:   a.services.FavoriteService,
			Push:        a.services.PushService,
			AppInfo:     a.services.AppInfoService,
			Toasts:      toasts.C(),
			Events:      a.worker,
			Clients:     clients,
			BuildInfo:   a.opts.BuildInfo,
			ShellOrigin: cfg.Proxy.ShellOrigin,
		}, log)
		if err != nil {
			return fmt.Errorf("create ui: %w", err)
		}
	}

	return nil
}

// Run registers the shell cache, restores push state and runs the worker,
// the proxy and the UI until ctx is canceled or the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.registration.Register(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("shell cache is not installed, continuing without it")
	}
	if err := a.services.PushService.Init(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("push state was not restored")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	group := workers.NewWorkers(a.logger).
		Add("event worker", a.worker)
	if a.server != nil {
		a.logger.Info().Str("address", a.cfg.Proxy.Address).Msg("starting proxy")
		group.Add("proxy", workers.WorkerFunc(a.server.RunServer))
	}
	if a.ui != nil {
		group.Add("ui", workers.WorkerFunc(func(ctx context.Context) error {
			defer cancel()
			err := a.ui.Run(ctx, a.opts.StartPage)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}))
	}

	return group.Run(ctx)
}

// Close waits for background revalidations and closes the database.
func (a *App) Close() {
	if a.interceptor != nil {
		if err := a.interceptor.Close(); err != nil {
			a.logger.Err(err).Msg("close cache interceptor")
		}
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("close local storage")
	}
}
