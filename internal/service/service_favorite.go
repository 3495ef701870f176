package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/models"
)

type favoriteService struct {
	repo store.FavoriteRepository
	now  func() time.Time

	logger *logger.Logger
}

func NewFavoriteService(repo store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{repo: repo, now: time.Now, logger: logger}
}

// Add saves a copy of story. Saving an existing favorite returns
// store.ErrFavoriteAlreadyExists.
func (f *favoriteService) Add(ctx context.Context, story models.Story) error {
	if err := f.repo.AddFavorite(ctx, models.FavoriteFromStory(story, f.now())); err != nil {
		return fmt.Errorf("add favorite %s: %w", story.ID, err)
	}
	return nil
}

func (f *favoriteService) Remove(ctx context.Context, id string) error {
	if err := f.repo.DeleteFavorite(ctx, id); err != nil {
		return fmt.Errorf("remove favorite %s: %w", id, err)
	}
	return nil
}

func (f *favoriteService) IsFavorite(ctx context.Context, id string) (bool, error) {
	_, found, err := f.repo.GetFavoriteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get favorite %s: %w", id, err)
	}
	return found, nil
}

func (f *favoriteService) Toggle(ctx context.Context, story models.Story) (bool, error) {
	found, err := f.IsFavorite(ctx, story.ID)
	if err != nil {
		return false, err
	}
	if found {
		return false, f.Remove(ctx, story.ID)
	}

	err = f.Add(ctx, story)
	if errors.Is(err, store.ErrFavoriteAlreadyExists) {
		return true, nil
	}
	return err == nil, err
}

// List applies the search, then the ordering. Without a sort field the
// store's primary-key order is kept.
func (f *favoriteService) List(ctx context.Context, query FavoriteQuery) ([]models.FavoriteStory, error) {
	if query.SortBy == "" {
		if query.Search == "" {
			return f.repo.GetAllFavorites(ctx)
		}
		return f.repo.SearchFavorites(ctx, query.Search)
	}

	order := query.Order
	if order == "" {
		order = models.SortAsc
	}

	sorted, err := f.repo.SortFavorites(ctx, query.SortBy, order)
	if err != nil {
		return nil, err
	}
	if query.Search == "" {
		return sorted, nil
	}

	matches, err := f.repo.SearchFavorites(ctx, query.Search)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		keep[m.ID] = struct{}{}
	}

	result := make([]models.FavoriteStory, 0, len(matches))
	for _, fav := range sorted {
		if _, ok := keep[fav.ID]; ok {
			result = append(result, fav)
		}
	}
	return result, nil
}
