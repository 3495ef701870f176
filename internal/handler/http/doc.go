// Package http implements the local caching proxy.
//
// Every request for the application shell or the story API is forwarded
// through the caching interceptor, so browsers and the terminal UI see the
// same offline behaviour. The package also exposes the push receiver
// endpoint, Prometheus metrics and version information.
//
// Cross-cutting concerns such as request tracing, access logging, response
// compression and entity tags are handled here by middleware.
package http
