package tui

import (
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/service"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type favoriteRemovedMsg struct {
	err error
}

// favoritesPage lists the locally saved stories with search and sorting.
// It works offline.
type favoritesPage struct {
	e *env

	search    textinput.Model
	searching bool
	sortBy    models.FavoriteSortField
	order     models.SortOrder

	items   []models.FavoriteStory
	idx     int
	loading bool
	err     error
}

func newFavoritesPage(e *env) *favoritesPage {
	return &favoritesPage{
		e:      e,
		search: newInput("search favorites", 100, false),
		sortBy: models.SortByCreatedAt,
		order:  models.SortDesc,
	}
}

func (p *favoritesPage) Init() tea.Cmd {
	return p.reload()
}

func (p *favoritesPage) query() service.FavoriteQuery {
	return service.FavoriteQuery{
		Search: strings.TrimSpace(p.search.Value()),
		SortBy: p.sortBy,
		Order:  p.order,
	}
}

func (p *favoritesPage) reload() tea.Cmd {
	p.loading = true
	ctx, favorites, q := p.e.ctx, p.e.favorites, p.query()
	return func() tea.Msg {
		items, err := favorites.List(ctx, q)
		return favoritesLoadedMsg{items: items, err: err}
	}
}

func (p *favoritesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		p.loading = false
		p.items, p.err = msg.items, msg.err
		if p.idx >= len(p.items) {
			p.idx = max(len(p.items)-1, 0)
		}
		return p, nil
	case favoriteRemovedMsg:
		if msg.err != nil {
			return p, func() tea.Msg { return statusMsg{err: msg.err} }
		}
		return p, tea.Batch(p.reload(), func() tea.Msg { return statusMsg{text: "Removed from favorites"} })
	case tea.KeyMsg:
		if p.searching {
			return p, p.updateSearch(msg)
		}
		return p, p.handleKey(msg)
	}

	if p.searching {
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		return p, cmd
	}
	return p, nil
}

// updateSearch filters as the user types. Enter or esc leaves the field.
func (p *favoritesPage) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.enter, keys.esc) {
		p.searching = false
		p.search.Blur()
		return nil
	}
	before := p.search.Value()
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	if p.search.Value() != before {
		return tea.Batch(cmd, p.reload())
	}
	return cmd
}

func (p *favoritesPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		return goBack
	case key.Matches(msg, keys.search):
		p.searching = true
		return p.search.Focus()
	case key.Matches(msg, keys.sort):
		if p.sortBy == models.SortByCreatedAt {
			p.sortBy = models.SortByName
		} else {
			p.sortBy = models.SortByCreatedAt
		}
		return p.reload()
	case key.Matches(msg, keys.order):
		if p.order == models.SortDesc {
			p.order = models.SortAsc
		} else {
			p.order = models.SortDesc
		}
		return p.reload()
	case key.Matches(msg, keys.up):
		if p.idx > 0 {
			p.idx--
		}
	case key.Matches(msg, keys.down):
		if p.idx < len(p.items)-1 {
			p.idx++
		}
	case key.Matches(msg, keys.enter):
		if item, ok := p.current(); ok {
			return navigate(Route{Page: PageStoryDetail, StoryID: item.ID}, "")
		}
	case key.Matches(msg, keys.remove):
		if item, ok := p.current(); ok {
			ctx, favorites, id := p.e.ctx, p.e.favorites, item.ID
			return func() tea.Msg {
				return favoriteRemovedMsg{err: favorites.Remove(ctx, id)}
			}
		}
	}
	return nil
}

func (p *favoritesPage) current() (models.FavoriteStory, bool) {
	if p.idx < 0 || p.idx >= len(p.items) {
		return models.FavoriteStory{}, false
	}
	return p.items[p.idx], true
}

func (p *favoritesPage) sortLabel() string {
	field := "date"
	if p.sortBy == models.SortByName {
		field = "title"
	}
	if p.order == models.SortDesc {
		if p.sortBy == models.SortByCreatedAt {
			return field + ", newest first"
		}
		return field + ", Z-A"
	}
	if p.sortBy == models.SortByCreatedAt {
		return field + ", oldest first"
	}
	return field + ", A-Z"
}

func (p *favoritesPage) View() string {
	var b strings.Builder
	b.WriteString("Search │ [" + p.search.View() + "]\n")
	b.WriteString("Sort   │ " + p.sortLabel() + "\n\n")

	switch {
	case p.loading && len(p.items) == 0:
		b.WriteString("Loading favorites...")
	case p.err != nil:
		b.WriteString(errorStyle.Render("Failed to load favorites: " + humanizeError(p.err)))
	case len(p.items) == 0 && p.query().Search != "":
		b.WriteString("No favorite matches \"" + p.query().Search + "\".")
	case len(p.items) == 0:
		b.WriteString("No favorite stories yet.\nOpen Home or Explore stories and press f on a story to save it.")
	default:
		for i, item := range p.items {
			b.WriteString(renderStoryRow(item.Story, i == p.idx))
		}
	}

	hotKeys := "/: search │ s: sort field │ o: order │ enter: open │ d: remove │ esc: back"
	if p.searching {
		hotKeys = "enter / esc: finish search"
	}
	return renderPage("FAVORITES", strings.TrimRight(b.String(), "\n"), hotKeys)
}
