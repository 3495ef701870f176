// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PageID names one of the client's pages. The set is closed: every
// switch over PageID handles all of them.
type PageID int

const (
	PageHome PageID = iota
	PageStoryDetail
	PageAddStory
	PageMyStories
	PageFavorites
	PageLogin
	PageRegister
	PageAbout
)

func (p PageID) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageStoryDetail:
		return "story"
	case PageAddStory:
		return "add-story"
	case PageMyStories:
		return "my-stories"
	case PageFavorites:
		return "favorites"
	case PageLogin:
		return "login"
	case PageRegister:
		return "register"
	case PageAbout:
		return "about"
	}
	return fmt.Sprintf("PageID(%d)", int(p))
}

// Route is a page plus its parameter. StoryID is only used by
// [PageStoryDetail].
type Route struct {
	Page    PageID
	StoryID string
}

const storyPathPrefix = "/stories/"

// Path renders r the way the shell addresses pages.
func (r Route) Path() string {
	switch r.Page {
	case PageHome:
		return "/"
	case PageStoryDetail:
		return storyPathPrefix + r.StoryID
	case PageAddStory:
		return "/add-story"
	case PageMyStories:
		return "/my-stories"
	case PageFavorites:
		return "/favorites"
	case PageLogin:
		return "/login"
	case PageRegister:
		return "/register"
	case PageAbout:
		return "/about"
	}
	return "/"
}

// ParseRoute maps a shell path, optionally prefixed with "#", to a route.
// Unknown paths report false.
func ParseRoute(path string) (Route, bool) {
	path = strings.TrimPrefix(path, "#")
	if path == "" {
		path = "/"
	}
	if id, ok := strings.CutPrefix(path, storyPathPrefix); ok {
		if id == "" || strings.Contains(id, "/") {
			return Route{}, false
		}
		return Route{Page: PageStoryDetail, StoryID: id}, true
	}

	switch path {
	case "/":
		return Route{Page: PageHome}, true
	case "/add-story":
		return Route{Page: PageAddStory}, true
	case "/my-stories":
		return Route{Page: PageMyStories}, true
	case "/favorites":
		return Route{Page: PageFavorites}, true
	case "/login":
		return Route{Page: PageLogin}, true
	case "/register":
		return Route{Page: PageRegister}, true
	case "/about":
		return Route{Page: PageAbout}, true
	}
	return Route{}, false
}

// page is one screen of the client. Update returns the page itself so
// pages can stay pointer receivers.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View() string
}

// newPage builds the page for r.
func newPage(e *env, r Route) page {
	switch r.Page {
	case PageHome:
		return newHomePage(e)
	case PageStoryDetail:
		return newDetailPage(e, r.StoryID)
	case PageAddStory:
		return newAddStoryPage(e)
	case PageMyStories:
		return newMyStoriesPage(e)
	case PageFavorites:
		return newFavoritesPage(e)
	case PageLogin:
		return newLoginPage(e)
	case PageRegister:
		return newRegisterPage(e)
	case PageAbout:
		return newAboutPage(e)
	}
	panic(fmt.Sprintf("tui: unhandled page %s", r.Page))
}
