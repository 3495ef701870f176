package tui

import (
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// detailPage shows one story and lets the user save it or copy its link.
type detailPage struct {
	e *env

	id       string
	story    models.Story
	favorite bool
	loading  bool
	err      error
}

func newDetailPage(e *env, id string) *detailPage {
	return &detailPage{e: e, id: id}
}

func (p *detailPage) Init() tea.Cmd {
	p.loading = true
	ctx, stories, favorites, id := p.e.ctx, p.e.stories, p.e.favorites, p.id
	return func() tea.Msg {
		story, err := stories.Get(ctx, id)
		if err != nil {
			return storyLoadedMsg{err: err}
		}
		// a failed lookup only hides the favorite marker
		favorite, _ := favorites.IsFavorite(ctx, id)
		return storyLoadedMsg{story: story, favorite: favorite}
	}
}

func (p *detailPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case storyLoadedMsg:
		p.loading = false
		p.story, p.favorite, p.err = msg.story, msg.favorite, msg.err
		return p, nil
	case favoriteToggledMsg:
		if msg.err == nil {
			p.favorite = msg.favorite
		}
		return p, favoriteStatus(msg)
	case copiedMsg:
		return p, func() tea.Msg {
			if msg.err != nil {
				return statusMsg{err: msg.err}
			}
			return statusMsg{text: "Link copied to the clipboard"}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, goBack
		case p.loading || p.err != nil:
			return p, nil
		case key.Matches(msg, keys.favorite):
			return p, cmdToggleFavorite(p.e, p.story)
		case key.Matches(msg, keys.copy):
			return p, p.cmdCopyLink()
		}
	}
	return p, nil
}

// link is the shell address of the story.
func (p *detailPage) link() string {
	return strings.TrimRight(p.e.shellOrigin, "/") + "/#" + Route{Page: PageStoryDetail, StoryID: p.id}.Path()
}

func (p *detailPage) cmdCopyLink() tea.Cmd {
	link, copyText := p.link(), p.e.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(link)}
	}
}

func (p *detailPage) View() string {
	if p.loading {
		return renderPage("STORY", "Loading story...", "esc: back")
	}
	if p.err != nil {
		return renderPage("STORY", errorStyle.Render("Failed to load the story: "+humanizeError(p.err)), "esc: back")
	}

	content := p.story.Content()
	var b strings.Builder
	title := utils.PlainText(content.Title)
	if p.favorite {
		title += "  ★"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Author   │ " + ownerOf(p.story) + "\n")
	b.WriteString("Date     │ " + formatDate(p.story) + "\n")
	b.WriteString("Location │ " + formatCoords(p.story.Lat, p.story.Lon) + "\n")
	b.WriteString("Photo    │ " + valueOrDash(p.story.PhotoURL) + "\n\n")
	b.WriteString(utils.PlainText(content.Body))

	favoriteHint := "f: save to favorites"
	if p.favorite {
		favoriteHint = "f: remove from favorites"
	}
	return renderPage("STORY", b.String(), "esc: back │ "+favoriteHint+" │ c: copy link")
}
