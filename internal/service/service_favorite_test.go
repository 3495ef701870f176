package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/mock"
	"github.com/MKhiriev/go-story-keeper/internal/store"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFavoriteSvc(t *testing.T) (*favoriteService, *mock.MockFavoriteRepository) {
	t.Helper()
	repo := mock.NewMockFavoriteRepository(gomock.NewController(t))
	svc := NewFavoriteService(repo, logger.Nop()).(*favoriteService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func favs(ids ...string) []models.FavoriteStory {
	out := make([]models.FavoriteStory, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.FavoriteStory{Story: models.Story{ID: id}})
	}
	return out
}

func TestFavoriteService_Add(t *testing.T) {
	svc, repo := newTestFavoriteSvc(t)
	story := models.Story{ID: "story-1", Name: "Dewi"}

	repo.EXPECT().AddFavorite(gomock.Any(), models.FavoriteStory{
		Story:   story,
		Owner:   "Dewi",
		SavedAt: svc.now(),
	}).Return(nil)

	require.NoError(t, svc.Add(context.Background(), story))
}

func TestFavoriteService_Toggle(t *testing.T) {
	story := models.Story{ID: "story-1"}

	t.Run("adds when missing", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		gomock.InOrder(
			repo.EXPECT().GetFavoriteByID(gomock.Any(), "story-1").Return(models.FavoriteStory{}, false, nil),
			repo.EXPECT().AddFavorite(gomock.Any(), gomock.Any()).Return(nil),
		)

		on, err := svc.Toggle(context.Background(), story)
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("removes when present", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		gomock.InOrder(
			repo.EXPECT().GetFavoriteByID(gomock.Any(), "story-1").Return(favs("story-1")[0], true, nil),
			repo.EXPECT().DeleteFavorite(gomock.Any(), "story-1").Return(nil),
		)

		on, err := svc.Toggle(context.Background(), story)
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("concurrent add counts as favorite", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		repo.EXPECT().GetFavoriteByID(gomock.Any(), "story-1").Return(models.FavoriteStory{}, false, nil)
		repo.EXPECT().AddFavorite(gomock.Any(), gomock.Any()).Return(store.ErrFavoriteAlreadyExists)

		on, err := svc.Toggle(context.Background(), story)
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		repo.EXPECT().GetFavoriteByID(gomock.Any(), "story-1").Return(models.FavoriteStory{}, false, store.ErrExecutingQuery)

		_, err := svc.Toggle(context.Background(), story)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

func TestFavoriteService_List(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		repo.EXPECT().GetAllFavorites(gomock.Any()).Return(favs("a", "b"), nil)

		got, err := svc.List(context.Background(), FavoriteQuery{})
		require.NoError(t, err)
		assert.Equal(t, favs("a", "b"), got)
	})

	t.Run("search only", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		repo.EXPECT().SearchFavorites(gomock.Any(), "bali").Return(favs("b"), nil)

		got, err := svc.List(context.Background(), FavoriteQuery{Search: "bali"})
		require.NoError(t, err)
		assert.Equal(t, favs("b"), got)
	})

	t.Run("sort defaults to ascending", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		repo.EXPECT().SortFavorites(gomock.Any(), models.SortByName, models.SortAsc).Return(favs("a", "b"), nil)

		_, err := svc.List(context.Background(), FavoriteQuery{SortBy: models.SortByName})
		require.NoError(t, err)
	})

	t.Run("search keeps sort order", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		repo.EXPECT().SortFavorites(gomock.Any(), models.SortByCreatedAt, models.SortDesc).Return(favs("c", "b", "a"), nil)
		repo.EXPECT().SearchFavorites(gomock.Any(), "x").Return(favs("a", "c"), nil)

		got, err := svc.List(context.Background(), FavoriteQuery{Search: "x", SortBy: models.SortByCreatedAt, Order: models.SortDesc})
		require.NoError(t, err)
		assert.Equal(t, favs("c", "a"), got)
	})

	t.Run("invalid sort field", func(t *testing.T) {
		svc, repo := newTestFavoriteSvc(t)
		repo.EXPECT().SortFavorites(gomock.Any(), models.FavoriteSortField("likes"), models.SortAsc).Return(nil, store.ErrInvalidSortField)

		_, err := svc.List(context.Background(), FavoriteQuery{SortBy: "likes"})
		assert.ErrorIs(t, err, store.ErrInvalidSortField)
	})
}
