package service

import (
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/adapter"
	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/internal/validators"
)

// Dependencies are the collaborators built before the services. Sync is
// created first because the background worker, which acts as Registrar,
// needs it.
type Dependencies struct {
	API         adapter.StoryAPI
	Storages    *store.ClientStorages
	Session     Session
	Sync        SyncService
	Registrar   SyncRegistrar
	PushManager *push.Manager
	Platform    push.Platform
	Notifier    cache.Notifier
}

type Services struct {
	AppInfoService  AppInfoService
	AuthService     AuthService
	StoryService    StoryService
	FavoriteService FavoriteService
	PushService     PushService
	SyncService     SyncService
	SyncJob         SyncJob
}

func NewServices(cfg *config.ClientConfig, deps Dependencies, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, cfg.Proxy, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	validator := validators.NewFormValidator(cfg.Adapter.MaxPhotoSize)

	return &Services{
		AppInfoService:  appInfo,
		AuthService:     NewAuthService(deps.API, deps.Session, validator, deps.Registrar, logger),
		StoryService:    NewStoryService(deps.API, deps.Storages.OfflineStoryRepository, deps.Session, validator, deps.Registrar, logger),
		FavoriteService: NewFavoriteService(deps.Storages.FavoriteRepository, logger),
		PushService:     NewPushService(deps.PushManager, deps.Platform, deps.Notifier, deps.API, logger),
		SyncService:     deps.Sync,
		SyncJob:         NewSyncJob(deps.Sync, logger),
	}, nil
}
