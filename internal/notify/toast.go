package notify

import (
	"context"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
)

// Toasts queues notifications for the terminal UI. When nobody drains the
// queue and it is full, new notifications are dropped.
type Toasts struct {
	ch     chan models.Notification
	logger *logger.Logger
}

func NewToasts(size int, logger *logger.Logger) *Toasts {
	if size < 1 {
		size = 1
	}
	return &Toasts{ch: make(chan models.Notification, size), logger: logger}
}

func (t *Toasts) Show(ctx context.Context, n models.Notification) error {
	select {
	case t.ch <- n:
	default:
		t.logger.Warn().
			Str("func", "Toasts.Show").
			Str("title", n.Title).
			Msg("toast queue full, notification dropped")
	}
	return nil
}

// C delivers queued notifications.
func (t *Toasts) C() <-chan models.Notification {
	return t.ch
}
