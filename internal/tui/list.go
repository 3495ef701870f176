package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// storiesPage is a paged list of remote stories. The home page and the
// explore page differ only in page size and the location filter.
type storiesPage struct {
	e *env

	title    string
	subtitle string
	query    models.StoryListQuery

	authenticated bool
	stories       []models.Story
	idx           int
	loading       bool
	spinner       spinner.Model
	err           error

	// pending is only shown on the explore page.
	showPending bool
	pending     int
}

// newHomePage lists stories that carry a location, 20 per page.
func newHomePage(e *env) *storiesPage {
	return newStoriesPage(e, "HOME", "Latest stories with a location",
		models.StoryListQuery{Page: 1, Size: 20, WithLocation: true}, false)
}

// newMyStoriesPage lists every story, 12 per page, plus the number of
// submissions still waiting in the offline queue.
func newMyStoriesPage(e *env) *storiesPage {
	return newStoriesPage(e, "EXPLORE STORIES", "Stories shared by other users",
		models.StoryListQuery{Page: 1, Size: 12}, true)
}

func newStoriesPage(e *env, title, subtitle string, query models.StoryListQuery, showPending bool) *storiesPage {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &storiesPage{
		e:           e,
		title:       title,
		subtitle:    subtitle,
		query:       query,
		spinner:     s,
		showPending: showPending,
	}
}

func (p *storiesPage) Init() tea.Cmd {
	p.authenticated = p.e.auth.IsAuthenticated(p.e.ctx)
	if !p.authenticated {
		return nil
	}
	p.loading = true
	cmds := []tea.Cmd{p.spinner.Tick, p.cmdLoad(p.query)}
	if p.showPending {
		cmds = append(cmds, p.cmdPending())
	}
	return tea.Batch(cmds...)
}

func (p *storiesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case storiesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			return p, nil
		}
		p.err = nil
		p.query.Page = msg.page
		p.stories = msg.stories
		p.idx = 0
		return p, nil
	case pendingLoadedMsg:
		if msg.err == nil {
			p.pending = len(msg.items)
		}
		return p, nil
	case favoriteToggledMsg:
		return p, favoriteStatus(msg)
	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *storiesPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !p.authenticated {
		if key.Matches(msg, keys.enter) {
			return navigate(Route{Page: PageLogin}, "")
		}
		return nil
	}
	if p.loading {
		return nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if p.idx > 0 {
			p.idx--
		}
	case key.Matches(msg, keys.down):
		if p.idx < len(p.stories)-1 {
			p.idx++
		}
	case key.Matches(msg, keys.right):
		if len(p.stories) < p.query.Size {
			return nil
		}
		return p.load(p.query.Page + 1)
	case key.Matches(msg, keys.left):
		if p.query.Page <= 1 {
			return nil
		}
		return p.load(p.query.Page - 1)
	case key.Matches(msg, keys.reload):
		return p.load(p.query.Page)
	case key.Matches(msg, keys.enter):
		if s, ok := p.current(); ok {
			return navigate(Route{Page: PageStoryDetail, StoryID: s.ID}, "")
		}
	case key.Matches(msg, keys.favorite):
		if s, ok := p.current(); ok {
			return cmdToggleFavorite(p.e, s)
		}
	}
	return nil
}

func (p *storiesPage) load(pageNum int) tea.Cmd {
	p.loading = true
	q := p.query
	q.Page = pageNum
	return tea.Batch(p.spinner.Tick, p.cmdLoad(q))
}

func (p *storiesPage) current() (models.Story, bool) {
	if p.idx < 0 || p.idx >= len(p.stories) {
		return models.Story{}, false
	}
	return p.stories[p.idx], true
}

func (p *storiesPage) View() string {
	var b strings.Builder
	b.WriteString(helpStyle.Render(p.subtitle))
	b.WriteString("\n\n")

	switch {
	case !p.authenticated:
		b.WriteString("You are not logged in. Press enter to log in.")
		return renderPage(p.title, b.String(), "enter: login")
	case p.loading:
		b.WriteString(p.spinner.View())
		b.WriteString(" Loading stories...")
	case p.err != nil:
		b.WriteString(errorStyle.Render("Failed to load stories: " + humanizeError(p.err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press r to retry"))
	case len(p.stories) == 0:
		b.WriteString("There are no stories to show.")
	default:
		for i, s := range p.stories {
			b.WriteString(renderStoryRow(s, i == p.idx))
		}
	}

	b.WriteString(fmt.Sprintf("\nPage %d", p.query.Page))
	if p.showPending && p.pending > 0 {
		b.WriteString(fmt.Sprintf(" │ %d stor%s waiting to be sent", p.pending, plural(p.pending, "y", "ies")))
	}

	return renderPage(p.title, strings.TrimRight(b.String(), "\n"),
		"↑/↓: move │ ←/→: page │ enter: open │ f: favorite │ r: reload")
}

func renderStoryRow(s models.Story, selected bool) string {
	content := s.Content()
	line := cursor(selected) + fitText(utils.PlainText(content.Title), 40)
	if selected {
		line = selectedStyle.Render(line)
	}
	meta := "    " + ownerOf(s) + " · " + formatDate(s)
	if s.HasLocation() {
		meta += " · " + formatCoords(s.Lat, s.Lon)
	}
	out := line + "\n" + helpStyle.Render(meta) + "\n"
	if excerpt := utils.PlainText(content.Excerpt()); selected && excerpt != "" {
		out += "    " + fitText(excerpt, 70) + "\n"
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (p *storiesPage) cmdLoad(q models.StoryListQuery) tea.Cmd {
	ctx, stories := p.e.ctx, p.e.stories
	return func() tea.Msg {
		list, err := stories.List(ctx, q)
		return storiesLoadedMsg{page: q.Page, stories: list, err: err}
	}
}

func (p *storiesPage) cmdPending() tea.Cmd {
	ctx, stories := p.e.ctx, p.e.stories
	return func() tea.Msg {
		items, err := stories.Pending(ctx)
		return pendingLoadedMsg{items: items, err: err}
	}
}

func cmdToggleFavorite(e *env, s models.Story) tea.Cmd {
	ctx, favorites := e.ctx, e.favorites
	return func() tea.Msg {
		favorite, err := favorites.Toggle(ctx, s)
		return favoriteToggledMsg{storyID: s.ID, favorite: favorite, err: err}
	}
}

func favoriteStatus(msg favoriteToggledMsg) tea.Cmd {
	return func() tea.Msg {
		switch {
		case msg.err != nil:
			return statusMsg{err: msg.err}
		case msg.favorite:
			return statusMsg{text: "Saved to favorites"}
		default:
			return statusMsg{text: "Removed from favorites"}
		}
	}
}
