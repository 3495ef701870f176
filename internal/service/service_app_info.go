package service

import (
	"context"

	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

type appInfoService struct {
	appVersion   string
	cacheVersion string

	logger *logger.Logger
}

// NewAppInfoService reports the application and shell cache versions.
func NewAppInfoService(app config.ClientApp, proxy config.ClientProxy, logger *logger.Logger) (AppInfoService, error) {
	if app.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:   app.Version,
		cacheVersion: proxy.CacheVersion,
		logger:       logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetCacheVersion(ctx context.Context) string {
	return s.cacheVersion
}
