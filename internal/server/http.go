package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	address string
	server  *http.Server

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		address: address,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", h.address, err)
	}
	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()

	h.server.BaseContext = func(net.Listener) context.Context {
		return context.WithoutCancel(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
		serveErr <- h.server.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err = h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.RunServer").Msg("HTTP server shutdown")
		h.server.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	<-serveErr

	h.logger.Info().Msg("HTTP server shut down gracefully")
	return nil
}

func (h *httpServer) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}
