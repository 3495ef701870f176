package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

type named struct {
	name   string
	worker Worker
}

type Workers struct {
	workers []named
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers w under name. Nil workers are skipped.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker != nil {
		w.workers = append(w.workers, named{name: name, worker: worker})
	}
	return w
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the rest and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, nw := range w.workers {
		g.Go(func() error {
			w.logger.Debug().Str("worker", nw.name).Msg("worker started")
			if err := nw.worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("worker", nw.name).Msg("worker failed")
				return fmt.Errorf("%s: %w", nw.name, err)
			}
			w.logger.Debug().Str("worker", nw.name).Msg("worker stopped")
			return nil
		})
	}
	return g.Wait()
}
