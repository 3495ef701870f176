package tui

import (
	"errors"
	"fmt"
	"math"
	"mime"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/validators"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field order of the add story form. The body is a textarea and sits
// between the title and the photo inputs.
const (
	addTitle = iota
	addBody
	addPhoto
	addLat
	addLon
	addFieldCount
)

var errNotANumber = errors.New("must be a number")

// addStoryPage collects a new story. Submitting while offline queues it.
type addStoryPage struct {
	e *env

	inputs     map[int]*textinput.Model
	body       textarea.Model
	focus      int
	submitting bool

	err      error
	localErr map[int]error
}

func newAddStoryPage(e *env) *addStoryPage {
	title := newInput("title (min. 5 characters)", 100, false)
	photo := newInput("path to a JPEG or PNG, max 5 MB", 1024, false)
	lat := newInput("latitude, e.g. -6.2088", 20, false)
	lon := newInput("longitude, e.g. 106.8456", 20, false)

	body := textarea.New()
	body.Placeholder = "What happened? (min. 10 characters)"
	body.SetWidth(60)
	body.SetHeight(5)
	body.ShowLineNumbers = false

	p := &addStoryPage{
		e: e,
		inputs: map[int]*textinput.Model{
			addTitle: &title,
			addPhoto: &photo,
			addLat:   &lat,
			addLon:   &lon,
		},
		body: body,
	}
	p.inputs[addTitle].Focus()
	return p
}

func (p *addStoryPage) Init() tea.Cmd {
	return textinput.Blink
}

func (p *addStoryPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if result, ok := msg.(storyCreatedMsg); ok {
		p.submitting = false
		if result.err != nil {
			p.err = result.err
			return p, nil
		}
		status := "Story published"
		if result.queued {
			status = "You are offline. The story is saved and will be sent when the connection is back"
		}
		return p, navigate(Route{Page: PageHome}, status)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return p, goBack
		case key.Matches(keyMsg, keys.submit):
			return p, p.submit()
		case keyMsg.String() == "tab":
			p.setFocus((p.focus + 1) % addFieldCount)
			return p, nil
		case keyMsg.String() == "shift+tab":
			p.setFocus((p.focus - 1 + addFieldCount) % addFieldCount)
			return p, nil
		}
	}

	var cmd tea.Cmd
	if p.focus == addBody {
		p.body, cmd = p.body.Update(msg)
	} else {
		*p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	}
	return p, cmd
}

func (p *addStoryPage) setFocus(i int) {
	if p.focus == addBody {
		p.body.Blur()
	} else {
		p.inputs[p.focus].Blur()
	}
	p.focus = i
	if p.focus == addBody {
		p.body.Focus()
	} else {
		p.inputs[p.focus].Focus()
	}
}

func (p *addStoryPage) submit() tea.Cmd {
	if p.submitting {
		return nil
	}
	p.err = nil

	story, localErr := p.buildStory()
	p.localErr = localErr
	if len(localErr) > 0 {
		return nil
	}

	p.submitting = true
	ctx, stories := p.e.ctx, p.e.stories
	return func() tea.Msg {
		queued, err := stories.Create(ctx, story)
		return storyCreatedMsg{queued: queued, err: err}
	}
}

// buildStory reads the form. Problems the validator cannot see, such as an
// unreadable file or a malformed number, are returned per field.
func (p *addStoryPage) buildStory() (models.NewStory, map[int]error) {
	story := models.NewStory{
		Title: strings.TrimSpace(p.inputs[addTitle].Value()),
		Body:  strings.TrimSpace(p.body.Value()),
	}
	errs := make(map[int]error)

	if path := strings.TrimSpace(p.inputs[addPhoto].Value()); path != "" {
		data, err := p.e.readFile(path)
		if err != nil {
			errs[addPhoto] = fmt.Errorf("cannot read file: %w", err)
		} else {
			story.Photo = data
			story.PhotoName = filepath.Base(path)
			story.PhotoContentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
		}
	}

	var err error
	if story.Lat, err = parseCoordinate(p.inputs[addLat].Value()); err != nil {
		errs[addLat] = err
	}
	if story.Lon, err = parseCoordinate(p.inputs[addLon].Value()); err != nil {
		errs[addLon] = err
	}
	return story, errs
}

func parseCoordinate(v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNotANumber
	}
	return &f, nil
}

func (p *addStoryPage) fieldText(i int, field string) string {
	if err := p.localErr[i]; err != nil {
		return err.Error()
	}
	return fieldError(p.err, field)
}

func (p *addStoryPage) View() string {
	var b strings.Builder
	row := func(label string, i int, errText string) {
		b.WriteString(label + " │ [" + p.inputs[i].View() + "]\n")
		if errText != "" {
			b.WriteString("           " + errorStyle.Render(errText) + "\n")
		}
	}

	row("Title    ", addTitle, p.fieldText(addTitle, validators.FieldTitle))
	b.WriteString("Story     │\n")
	b.WriteString(p.body.View())
	b.WriteString("\n")
	if msg := fieldError(p.err, validators.FieldDescription); msg != "" {
		b.WriteString("           " + errorStyle.Render(msg) + "\n")
	}
	row("Photo    ", addPhoto, p.fieldText(addPhoto, validators.FieldPhoto))
	row("Latitude ", addLat, p.fieldText(addLat, validators.FieldLocation))
	row("Longitude", addLon, p.localErrText(addLon))

	if p.submitting {
		b.WriteString("\n[Sending...]\n")
	} else {
		b.WriteString("\n[Share story]\n")
	}

	var verr *validators.ValidationError
	if p.err != nil && !errors.As(p.err, &verr) {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(p.err)))
		b.WriteString("\n")
	}

	return renderPage("ADD STORY", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: share")
}

func (p *addStoryPage) localErrText(i int) string {
	if err := p.localErr[i]; err != nil {
		return err.Error()
	}
	return ""
}
