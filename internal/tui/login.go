// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	loginEmail = iota
	loginPassword
)

// loginPage renders the email and password inputs and logs the user in.
// On success it navigates home; the menu is rebuilt by the router.
type loginPage struct {
	e *env

	form       form
	submitting bool
	err        error
}

func newLoginPage(e *env) *loginPage {
	return &loginPage{
		e: e,
		form: newForm(
			newInput("email", 254, false),
			newInput("password", 256, true),
		),
	}
}

func (p *loginPage) Init() tea.Cmd {
	return textinput.Blink
}

func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if result, ok := msg.(loginDoneMsg); ok {
		p.submitting = false
		if result.err != nil {
			p.err = result.err
			return p, nil
		}
		return p, navigate(Route{Page: PageHome}, "Welcome, "+valueOrDash(result.result.Name)+"!")
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
			return p, p.cmdLogin(models.LoginRequest{
				Email:    strings.TrimSpace(p.form.value(loginEmail)),
				Password: p.form.value(loginPassword),
			})
		}
	}

	return p, p.form.update(msg)
}

func (p *loginPage) View() string {
	var b strings.Builder
	b.WriteString(p.form.row("Email   ", loginEmail, fieldError(p.err, validators.FieldEmail)))
	b.WriteString(p.form.row("Password", loginPassword, fieldError(p.err, validators.FieldPassword)))

	if p.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if p.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(p.err)))
		b.WriteString("\n")
	}

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (p *loginPage) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx, auth := p.e.ctx, p.e.auth
	return func() tea.Msg {
		result, err := auth.Login(ctx, req)
		return loginDoneMsg{result: result, err: err}
	}
}
