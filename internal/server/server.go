package server

import (
	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/handler"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

// NewServer creates the proxy server for handlers.
func NewServer(handlers *handler.Handlers, cfg config.ClientProxy, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Address == "" {
		return nil, errNoServersAreCreated
	}

	return newHTTPServer(handlers.HTTP.Init(), cfg.Address, logger), nil
}
