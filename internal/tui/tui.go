// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the story client.
//
// [RootModel] routes between a closed set of pages ([PageID]) and rebuilds
// the navigation menu from the session after every page change. The
// running UI registers itself as an open window so notification clicks
// can focus it, and shows notifications produced by the worker as toasts.
package tui

import (
	"context"
	"errors"
	"os"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/notify"
	"github.com/MKhiriev/go-story-keeper/internal/service"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Dependencies are the collaborators of the UI.
type Dependencies struct {
	Auth      service.AuthService
	Stories   service.StoryService
	Favorites service.FavoriteService
	Push      service.PushService
	AppInfo   service.AppInfoService

	// Toasts delivers notifications to show. May be nil.
	Toasts <-chan models.Notification
	// Events receives notification clicks. May be nil.
	Events EventDispatcher
	// Clients is the window registry the UI joins while running. May be nil.
	Clients *notify.Clients

	BuildInfo   models.AppBuildInfo
	ShellOrigin string
}

type TUI struct {
	deps   Dependencies
	logger *logger.Logger
}

func New(deps Dependencies, logger *logger.Logger) (*TUI, error) {
	if deps.Auth == nil || deps.Stories == nil || deps.Favorites == nil || deps.Push == nil || deps.AppInfo == nil {
		return nil, ErrMissingService
	}
	return &TUI{deps: deps, logger: logger}, nil
}

// Run shows the UI starting at the path start until the user quits or ctx
// is canceled. Quitting returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context, start string) error {
	route, ok := ParseRoute(start)
	if !ok {
		t.logger.Warn().Str("path", start).Msg("unknown start page, opening home")
		route = Route{Page: PageHome}
	}

	w := &window{}
	root := newRootModel(t.newEnv(ctx), route, t.deps.Toasts, t.deps.Events, w)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	w.attach(program.Send)
	if t.deps.Clients != nil {
		unregister := t.deps.Clients.Register(w)
		defer unregister()
	}

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(*RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newEnv(ctx context.Context) *env {
	return &env{
		ctx:         ctx,
		auth:        t.deps.Auth,
		stories:     t.deps.Stories,
		favorites:   t.deps.Favorites,
		push:        t.deps.Push,
		appInfo:     t.deps.AppInfo,
		buildInfo:   t.deps.BuildInfo,
		shellOrigin: t.deps.ShellOrigin,
		readFile:    os.ReadFile,
		copyText:    clipboard.WriteAll,
	}
}
