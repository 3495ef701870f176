package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/adapter"
	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/internal/validators"
	"github.com/MKhiriev/go-story-keeper/models"
)

const defaultStoryPageSize = 20

type storyService struct {
	api       adapter.StoryAPI
	offline   store.OfflineStoryRepository
	session   Session
	validator validators.Validator
	registrar SyncRegistrar
	now       func() time.Time

	logger *logger.Logger
}

// NewStoryService builds the story service. Submissions that cannot reach
// the API are stored in offline and announced to registrar.
func NewStoryService(api adapter.StoryAPI, offline store.OfflineStoryRepository, session Session, validator validators.Validator, registrar SyncRegistrar, logger *logger.Logger) StoryService {
	return &storyService{
		api:       api,
		offline:   offline,
		session:   session,
		validator: validator,
		registrar: registrar,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *storyService) List(ctx context.Context, query models.StoryListQuery) ([]models.Story, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Size < 1 {
		query.Size = defaultStoryPageSize
	}

	stories, err := s.api.GetStories(ctx, query)
	if err != nil {
		s.logger.Err(err).
			Str("func", "storyService.List").
			Int("page", query.Page).
			Msg("failed to list stories")
		return nil, mapAdapterError(err)
	}
	return stories, nil
}

func (s *storyService) Get(ctx context.Context, id string) (models.Story, error) {
	story, err := s.api.GetStoryByID(ctx, id)
	if err != nil {
		s.logger.Err(err).
			Str("func", "storyService.Get").
			Str("story_id", id).
			Msg("failed to get story")
		return models.Story{}, mapAdapterError(err)
	}
	return story, nil
}

func (s *storyService) Create(ctx context.Context, story models.NewStory) (bool, error) {
	if err := s.validator.Validate(ctx, story); err != nil {
		return false, err
	}
	if err := s.checkToken(ctx); err != nil {
		return false, err
	}

	err := s.api.PostStory(ctx, story)
	if err == nil {
		return false, nil
	}

	mapped := mapAdapterError(err)
	if !isUnreachable(ctx, mapped) {
		s.logger.Err(err).
			Str("func", "storyService.Create").
			Msg("story rejected")
		return false, mapped
	}

	if err = s.queue(ctx, story); err != nil {
		return false, fmt.Errorf("%w: queue offline story: %w", mapped, err)
	}
	return true, nil
}

func (s *storyService) Pending(ctx context.Context) ([]models.OfflineStory, error) {
	stories, err := s.offline.GetAllOfflineStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("read offline queue: %w", err)
	}
	return stories, nil
}

// checkToken fails fast on a missing or expired token so that the request
// is never sent.
func (s *storyService) checkToken(ctx context.Context) error {
	token, err := s.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if token == "" {
		return ErrNotAuthenticated
	}
	if utils.IsTokenExpired(token, s.now()) {
		return ErrTokenIsExpired
	}
	return nil
}

func (s *storyService) queue(ctx context.Context, story models.NewStory) error {
	queued, err := s.offline.AddOfflineStory(ctx, models.OfflineStoryFromNew(story))
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("func", "storyService.queue").
		Int64("temp_id", queued.TempID).
		Msg("story queued for background sync")

	if s.registrar == nil {
		return nil
	}
	if err = s.registrar.RegisterSync(ctx, cache.SyncTag); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "storyService.queue").
			Msg("failed to register background sync")
	}
	return nil
}
