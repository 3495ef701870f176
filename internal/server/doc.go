// Package server runs the local caching proxy.
//
// The server listens on the configured proxy address, serves the router
// built by the HTTP handler and shuts down gracefully when its context is
// canceled.
package server
