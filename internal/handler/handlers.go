package handler

import (
	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/handler/http"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The caching
// proxy is the only transport and needs a listen address.
func NewHandlers(cfg *config.ClientConfig, deps http.Dependencies, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Proxy.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(cfg, deps, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
