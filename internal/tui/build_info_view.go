// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// aboutPage shows what the client does and which build is running.
type aboutPage struct {
	e *env
}

func newAboutPage(e *env) *aboutPage {
	return &aboutPage{e: e}
}

func (p *aboutPage) Init() tea.Cmd {
	return nil
}

func (p *aboutPage) Update(msg tea.Msg) (page, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return p, goBack
	}
	return p, nil
}

func (p *aboutPage) View() string {
	var b strings.Builder

	b.WriteString("Story Keeper shares short stories with a photo and a location.\n\n")
	b.WriteString("Register and log in to read and share stories.\n")
	b.WriteString("Save stories to favorites; they stay readable offline.\n")
	b.WriteString("Stories shared while offline are queued and sent later.\n")
	b.WriteString("Enable notifications from the menu to hear about new stories.\n\n")

	b.WriteString("Version       │ ")
	b.WriteString(valueOrNA(p.e.buildInfo.BuildVersion()))
	b.WriteString("\nBuild date    │ ")
	b.WriteString(valueOrNA(p.e.buildInfo.BuildDate()))
	b.WriteString("\nCommit        │ ")
	b.WriteString(valueOrNA(p.e.buildInfo.BuildCommit()))
	b.WriteString("\nCache version │ ")
	b.WriteString(valueOrNA(p.e.appInfo.GetCacheVersion(p.e.ctx)))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
