// Package workers runs the long-lived parts of the client side by side:
// the proxy server, the event worker and the offline sync job.
package workers

import "context"

// Worker is a long-running process. Run blocks until ctx is canceled or
// the worker fails; a nil error means a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error { return f(ctx) }
