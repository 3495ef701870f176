package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/service"
	"github.com/MKhiriev/go-story-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStories() []models.Story {
	return []models.Story{
		{ID: "s-1", Name: "Alice", Description: "Sunset at the bay", CreatedAt: "2026-10-01T10:00:00Z"},
		{ID: "s-2", Name: "Bob", Description: "Morning walk", CreatedAt: "2026-10-02T10:00:00Z"},
	}
}

func TestStoriesPage_LoggedOut(t *testing.T) {
	te := newTestEnv(t)
	p := newHomePage(te.env)

	assert.Nil(t, p.Init())
	assert.Contains(t, p.View(), "You are not logged in")

	_, cmd := p.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []tea.Msg{NavigateTo{Route: Route{Page: PageLogin}}}, run(cmd))
}

func TestStoriesPage_LoadAndOpen(t *testing.T) {
	te := newTestEnv(t)
	te.auth.authenticated = true
	te.stories.stories = sampleStories()
	p := newHomePage(te.env)

	require.NotNil(t, p.Init())
	msgs := run(p.cmdLoad(p.query))
	require.Len(t, msgs, 1)
	require.Len(t, te.stories.queries, 1)
	assert.True(t, te.stories.queries[0].WithLocation)
	assert.Equal(t, 20, te.stories.queries[0].Size)

	p.Update(msgs[0])
	assert.False(t, p.loading)
	assert.Contains(t, p.View(), "Alice")

	p.Update(keyType(tea.KeyDown))
	_, cmd := p.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []tea.Msg{NavigateTo{Route: Route{Page: PageStoryDetail, StoryID: "s-2"}}}, run(cmd))
}

func TestStoriesPage_NoNextPageWhenShort(t *testing.T) {
	te := newTestEnv(t)
	te.auth.authenticated = true
	p := newHomePage(te.env)
	p.Init()
	p.Update(storiesLoadedMsg{page: 1, stories: sampleStories()})

	_, cmd := p.Update(keyType(tea.KeyRight))
	assert.Nil(t, cmd)
	_, cmd = p.Update(keyType(tea.KeyLeft))
	assert.Nil(t, cmd)
}

func TestStoriesPage_ToggleFavorite(t *testing.T) {
	te := newTestEnv(t)
	te.auth.authenticated = true
	p := newHomePage(te.env)
	p.Init()
	p.Update(storiesLoadedMsg{page: 1, stories: sampleStories()})

	_, cmd := p.Update(keyRunes("f"))
	msgs := run(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"s-1"}, te.favorites.toggled)

	_, cmd = p.Update(msgs[0])
	assert.Equal(t, []tea.Msg{statusMsg{text: "Saved to favorites"}}, run(cmd))
}

func TestMyStoriesPage_PendingCount(t *testing.T) {
	te := newTestEnv(t)
	te.auth.authenticated = true
	te.stories.pending = []models.OfflineStory{{}, {}}
	p := newMyStoriesPage(te.env)
	p.Init()
	p.Update(storiesLoadedMsg{page: 1})

	msgs := run(p.cmdPending())
	require.Len(t, msgs, 1)
	p.Update(msgs[0])

	assert.Contains(t, p.View(), "2 stories waiting to be sent")
}

func TestDetailPage(t *testing.T) {
	te := newTestEnv(t)
	te.stories.story = sampleStories()[0]
	te.favorites.favorite = true
	p := newDetailPage(te.env, "s-1")

	msgs := run(p.Init())
	require.Len(t, msgs, 1)
	p.Update(msgs[0])
	assert.Contains(t, p.View(), "★")

	_, cmd := p.Update(keyRunes("c"))
	msgs = run(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"http://shell.example/#/stories/s-1"}, te.copied)

	_, cmd = p.Update(msgs[0])
	assert.Equal(t, []tea.Msg{statusMsg{text: "Link copied to the clipboard"}}, run(cmd))
}

func TestDetailPage_NotFound(t *testing.T) {
	te := newTestEnv(t)
	te.stories.getErr = service.ErrStoryNotFound
	p := newDetailPage(te.env, "missing")

	p.Update(run(p.Init())[0])

	assert.Contains(t, p.View(), "Story not found")
	_, cmd := p.Update(keyRunes("f"))
	assert.Nil(t, cmd)
}

func favoriteItems() []models.FavoriteStory {
	now := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	items := make([]models.FavoriteStory, 0, 2)
	for _, s := range sampleStories() {
		items = append(items, models.FavoriteFromStory(s, now))
	}
	return items
}

func TestFavoritesPage_DefaultQuery(t *testing.T) {
	te := newTestEnv(t)
	te.favorites.items = favoriteItems()
	p := newFavoritesPage(te.env)

	msgs := run(p.Init())
	require.Len(t, msgs, 1)
	p.Update(msgs[0])

	require.Len(t, te.favorites.queries, 1)
	assert.Equal(t, service.FavoriteQuery{SortBy: models.SortByCreatedAt, Order: models.SortDesc}, te.favorites.queries[0])
	assert.Contains(t, p.View(), "newest first")
}

func TestFavoritesPage_SortAndOrder(t *testing.T) {
	te := newTestEnv(t)
	p := newFavoritesPage(te.env)

	_, cmd := p.Update(keyRunes("s"))
	run(cmd)
	_, cmd = p.Update(keyRunes("o"))
	run(cmd)

	require.Len(t, te.favorites.queries, 2)
	assert.Equal(t, service.FavoriteQuery{SortBy: models.SortByName, Order: models.SortDesc}, te.favorites.queries[0])
	assert.Equal(t, service.FavoriteQuery{SortBy: models.SortByName, Order: models.SortAsc}, te.favorites.queries[1])
	assert.Contains(t, p.View(), "title, A-Z")
}

func TestFavoritesPage_Search(t *testing.T) {
	te := newTestEnv(t)
	p := newFavoritesPage(te.env)

	p.Update(keyRunes("/"))
	require.True(t, p.searching)

	// esc leaves the search field instead of the page
	_, cmd := p.Update(keyType(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.False(t, p.searching)

	p.search.SetValue("  sunset ")
	run(p.reload())
	require.Len(t, te.favorites.queries, 1)
	assert.Equal(t, "sunset", te.favorites.queries[0].Search)

	p.Update(favoritesLoadedMsg{})
	assert.Contains(t, p.View(), `No favorite matches "sunset"`)
}

func TestFavoritesPage_RemoveAndOpen(t *testing.T) {
	te := newTestEnv(t)
	p := newFavoritesPage(te.env)
	p.Update(favoritesLoadedMsg{items: favoriteItems()})

	p.Update(keyType(tea.KeyDown))
	_, cmd := p.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []tea.Msg{NavigateTo{Route: Route{Page: PageStoryDetail, StoryID: "s-2"}}}, run(cmd))

	_, cmd = p.Update(keyRunes("d"))
	msgs := run(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"s-2"}, te.favorites.removed)

	_, cmd = p.Update(msgs[0])
	msgs = run(cmd)
	assert.Contains(t, msgs, tea.Msg(statusMsg{text: "Removed from favorites"}))
}

func TestFavoritesPage_Empty(t *testing.T) {
	te := newTestEnv(t)
	p := newFavoritesPage(te.env)
	p.Update(favoritesLoadedMsg{})

	assert.Contains(t, p.View(), "No favorite stories yet")
}

func TestAboutPage(t *testing.T) {
	te := newTestEnv(t)
	p := newAboutPage(te.env)

	view := p.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "berbagi-cerita-v1")

	_, cmd := p.Update(keyType(tea.KeyEsc))
	assert.Equal(t, []tea.Msg{backMsg{}}, run(cmd))
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Wrong email or password", humanizeError(service.ErrWrongCredentials))
	assert.Equal(t, "No network connection or the server is unreachable", humanizeError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, assert.AnError.Error(), humanizeError(assert.AnError))
}
