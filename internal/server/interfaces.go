package server

import "context"

// Server defines the lifecycle contract of the transport servers managed
// by this package.
type Server interface {
	// RunServer listens and serves until ctx is canceled, then shuts down
	// gracefully. A nil error means a clean shutdown.
	RunServer(ctx context.Context) error

	// Addr returns the bound listen address, or "" before listening.
	Addr() string
}
