package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
)

// SyncTag triggers a flush of queued offline stories.
const SyncTag = "sync-stories"

// Event is a message for the worker. The set is closed: [PushEvent],
// [NotificationClickEvent] and [SyncEvent].
type Event interface {
	kind() string
}

// PushEvent carries the decrypted payload of a push message; Data may be
// empty.
type PushEvent struct {
	Data []byte
}

// NotificationClickEvent reports a click on a shown notification. Action
// is empty when the notification body itself was clicked.
type NotificationClickEvent struct {
	Action       string
	Notification models.Notification
}

// SyncEvent is a background-sync trigger.
type SyncEvent struct {
	Tag string
}

func (PushEvent) kind() string              { return "push" }
func (NotificationClickEvent) kind() string { return "notificationclick" }
func (SyncEvent) kind() string              { return "sync" }

// Worker handles events on a single goroutine that shares no state with
// the pages.
type Worker struct {
	events  chan Event
	stopped chan struct{}

	notifier Notifier
	clients  Clients
	syncer   Syncer

	recorder Recorder
	logger   *logger.Logger
}

// NewWorker constructs a [Worker] whose queue holds buffer events.
func NewWorker(buffer int, notifier Notifier, clients Clients, syncer Syncer, recorder Recorder, logger *logger.Logger) *Worker {
	if buffer < 1 {
		buffer = 1
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Worker{
		events:   make(chan Event, buffer),
		stopped:  make(chan struct{}),
		notifier: notifier,
		clients:  clients,
		syncer:   syncer,
		recorder: recorder,
		logger:   logger,
	}
}

// Dispatch queues ev. It blocks while the queue is full.
func (w *Worker) Dispatch(ctx context.Context, ev Event) error {
	select {
	case <-w.stopped:
		return ErrWorkerStopped
	default:
	}

	select {
	case w.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-w.stopped:
		return ErrWorkerStopped
	}
}

// DispatchPush queues a push event carrying data.
func (w *Worker) DispatchPush(ctx context.Context, data []byte) error {
	return w.Dispatch(ctx, PushEvent{Data: data})
}

// RegisterSync queues a background-sync event for tag.
func (w *Worker) RegisterSync(ctx context.Context, tag string) error {
	return w.Dispatch(ctx, SyncEvent{Tag: tag})
}

// Run handles events until ctx is cancelled. It must be called once.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stopped)

	w.logger.Info().Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("worker stopped")
			return nil
		case ev := <-w.events:
			w.handle(ctx, ev)
		}
	}
}

func (w *Worker) handle(ctx context.Context, ev Event) {
	w.recorder.RecordWorkerEvent(ev.kind())

	var err error
	switch e := ev.(type) {
	case PushEvent:
		err = w.HandlePush(ctx, e.Data)
	case NotificationClickEvent:
		err = w.HandleNotificationClick(ctx, e.Action, e.Notification)
	case SyncEvent:
		err = w.HandleSync(ctx, e.Tag)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}

	if err != nil {
		w.logger.Err(err).
			Str("func", "Worker.handle").
			Str("event", ev.kind()).
			Msg("worker event failed")
	}
}

// HandlePush shows a notification for a push message. A missing or
// malformed payload shows the default notification.
func (w *Worker) HandlePush(ctx context.Context, data []byte) error {
	n := models.DefaultNotification()
	if len(data) > 0 {
		var payload models.PushPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			w.logger.Warn().Err(err).
				Str("func", "Worker.HandlePush").
				Msg("push payload is not JSON, showing default notification")
		} else {
			n = payload.Resolve()
		}
	}

	n.Title = utils.PlainText(n.Title)
	n.Body = utils.PlainText(n.Body)

	if err := w.notifier.Show(ctx, n); err != nil {
		return fmt.Errorf("show notification: %w", err)
	}
	return nil
}

// HandleNotificationClick focuses a window already on the notification's
// URL or opens a new one. The close action does nothing.
func (w *Worker) HandleNotificationClick(ctx context.Context, action string, n models.Notification) error {
	if action == models.NotificationActionClose {
		return nil
	}

	target := n.URL
	if target == "" {
		target = "/"
	}

	focused, err := w.clients.Focus(ctx, target)
	if err != nil {
		w.logger.Warn().Err(err).
			Str("func", "Worker.HandleNotificationClick").
			Str("url", target).
			Msg("failed to focus window")
	}
	if focused {
		return nil
	}

	if err = w.clients.Open(ctx, target); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	return nil
}

// HandleSync flushes the offline queue on [SyncTag]; other tags are
// ignored.
func (w *Worker) HandleSync(ctx context.Context, tag string) error {
	if tag != SyncTag {
		w.logger.Debug().
			Str("func", "Worker.HandleSync").
			Str("tag", tag).
			Msg("ignoring unknown sync tag")
		return nil
	}
	if w.syncer == nil {
		return nil
	}
	return w.syncer.FlushOfflineStories(ctx)
}
