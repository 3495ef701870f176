package tui

import (
	"github.com/MKhiriev/go-story-keeper/models"
)

// NavigateTo switches the active page. Status, when set, is shown on the
// new page's status line.
type NavigateTo struct {
	Route  Route
	Status string
}

// statusMsg replaces the status line. A non-nil err is shown as an error.
type statusMsg struct {
	text string
	err  error
}

// backMsg returns to the previous page.
type backMsg struct{}

// toastMsg delivers a notification shown by the worker.
type toastMsg struct {
	notification models.Notification
}

// focusMsg is sent when a notification click focuses this window.
type focusMsg struct {
	url string
}

type storiesLoadedMsg struct {
	page    int
	stories []models.Story
	err     error
}

type storyLoadedMsg struct {
	story    models.Story
	favorite bool
	err      error
}

type favoriteToggledMsg struct {
	storyID  string
	favorite bool
	err      error
}

type favoritesLoadedMsg struct {
	items []models.FavoriteStory
	err   error
}

type pendingLoadedMsg struct {
	items []models.OfflineStory
	err   error
}

type loginDoneMsg struct {
	result models.LoginResult
	err    error
}

type registerDoneMsg struct {
	name string
	err  error
}

type storyCreatedMsg struct {
	queued bool
	err    error
}

type logoutDoneMsg struct {
	err error
}

// pushDoneMsg reports the outcome of a notification menu action.
type pushDoneMsg struct {
	action menuAction
	err    error
}

type copiedMsg struct {
	err error
}
