package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/adapter"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

type syncService struct {
	api     adapter.StoryAPI
	offline store.OfflineStoryRepository
	session Session
	limiter *rate.Limiter
	flights singleflight.Group
	now     func() time.Time

	logger *logger.Logger
}

// NewSyncService builds the offline queue flusher. Consecutive submissions
// are at least pause apart; a non-positive pause disables pacing.
func NewSyncService(api adapter.StoryAPI, offline store.OfflineStoryRepository, session Session, pause time.Duration, logger *logger.Logger) SyncService {
	limit := rate.Inf
	if pause > 0 {
		limit = rate.Every(pause)
	}

	return &syncService{
		api:     api,
		offline: offline,
		session: session,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
		logger:  logger,
	}
}

// FlushOfflineStories posts queued stories in TempID order. Sent stories
// and stories the API rejects are removed from the queue. The flush stops
// at the first transient failure, leaving that story and the rest queued.
// Concurrent calls share a single flush.
func (s *syncService) FlushOfflineStories(ctx context.Context) error {
	_, err, _ := s.flights.Do("flush", func() (any, error) {
		return nil, s.flush(ctx)
	})
	return err
}

func (s *syncService) flush(ctx context.Context) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if token == "" || utils.IsTokenExpired(token, s.now()) {
		s.logger.Debug().
			Str("func", "syncService.flush").
			Msg("no valid session, offline stories stay queued")
		return nil
	}

	stories, err := s.offline.GetAllOfflineStories(ctx)
	if err != nil {
		return fmt.Errorf("read offline queue: %w", err)
	}

	var sent, dropped int
	defer func() {
		if sent+dropped > 0 {
			s.logger.Info().
				Str("func", "syncService.flush").
				Int("sent", sent).
				Int("dropped", dropped).
				Int("remaining", len(stories)-sent-dropped).
				Msg("offline queue flushed")
		}
	}()

	for _, story := range stories {
		if err = s.limiter.Wait(ctx); err != nil {
			return err
		}

		postErr := s.api.PostStory(ctx, story.ToNewStory())
		if postErr != nil {
			mapped := mapAdapterError(postErr)
			if isTransient(ctx, mapped) {
				s.logger.Warn().Err(postErr).
					Str("func", "syncService.flush").
					Int64("temp_id", story.TempID).
					Msg("offline story not sent, flush stopped")
				return fmt.Errorf("send offline story %d: %w", story.TempID, mapped)
			}

			s.logger.Warn().Err(postErr).
				Str("func", "syncService.flush").
				Int64("temp_id", story.TempID).
				Msg("offline story rejected, dropping it")
			dropped++
		} else {
			sent++
		}

		if err = s.offline.DeleteOfflineStory(ctx, story.TempID); err != nil {
			return fmt.Errorf("delete offline story %d: %w", story.TempID, err)
		}
	}

	return nil
}
