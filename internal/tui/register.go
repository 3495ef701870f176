package tui

import (
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/validators"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
)

// registerPage creates an account and sends the user to the login page.
type registerPage struct {
	e *env

	form       form
	submitting bool
	err        error
}

func newRegisterPage(e *env) *registerPage {
	return &registerPage{
		e: e,
		form: newForm(
			newInput("name", 100, false),
			newInput("email", 254, false),
			newInput("password (min. 8 characters)", 256, true),
		),
	}
}

func (p *registerPage) Init() tea.Cmd {
	return textinput.Blink
}

func (p *registerPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if result, ok := msg.(registerDoneMsg); ok {
		p.submitting = false
		if result.err != nil {
			p.err = result.err
			return p, nil
		}
		return p, navigate(Route{Page: PageLogin}, "Account "+result.name+" created, please log in")
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return p, goBack
		case key.Matches(keyMsg, keys.nextField):
			p.form.next()
			return p, nil
		case key.Matches(keyMsg, keys.prevField):
			p.form.prev()
			return p, nil
		case key.Matches(keyMsg, keys.enter):
			if p.submitting {
				return p, nil
			}
			p.err = nil
			p.submitting = true
			return p, p.cmdRegister(models.RegisterRequest{
				Name:     strings.TrimSpace(p.form.value(registerName)),
				Email:    strings.TrimSpace(p.form.value(registerEmail)),
				Password: p.form.value(registerPassword),
			})
		}
	}

	return p, p.form.update(msg)
}

func (p *registerPage) View() string {
	var b strings.Builder
	b.WriteString(p.form.row("Name    ", registerName, fieldError(p.err, validators.FieldName)))
	b.WriteString(p.form.row("Email   ", registerEmail, fieldError(p.err, validators.FieldEmail)))
	b.WriteString(p.form.row("Password", registerPassword, fieldError(p.err, validators.FieldPassword)))

	if p.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if p.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(p.err)))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (p *registerPage) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx, auth := p.e.ctx, p.e.auth
	return func() tea.Msg {
		return registerDoneMsg{name: req.Name, err: auth.Register(ctx, req)}
	}
}
