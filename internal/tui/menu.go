package tui

import (
	"strings"
)

// menuAction is what selecting a navigation entry does.
type menuAction int

const (
	actionNavigate menuAction = iota
	actionSubscribe
	actionUnsubscribe
	actionTestNotification
	actionServerTestPush
	actionLogout
)

type menuItem struct {
	label  string
	action menuAction
	route  Route
}

func navItem(label string, p PageID) menuItem {
	return menuItem{label: label, action: actionNavigate, route: Route{Page: p}}
}

// buildMenu returns the navigation entries for the session state. It is
// rebuilt after every page change.
func buildMenu(authenticated bool) []menuItem {
	if authenticated {
		return []menuItem{
			navItem("Home", PageHome),
			navItem("Explore stories", PageMyStories),
			navItem("Add story", PageAddStory),
			navItem("Favorites", PageFavorites),
			navItem("About", PageAbout),
			{label: "Enable notifications", action: actionSubscribe},
			{label: "Disable notifications", action: actionUnsubscribe},
			{label: "Show test notification", action: actionTestNotification},
			{label: "Request test push", action: actionServerTestPush},
			{label: "Logout", action: actionLogout},
		}
	}
	return []menuItem{
		navItem("Home", PageHome),
		navItem("Explore stories", PageMyStories),
		navItem("Add story", PageAddStory),
		navItem("Favorites", PageFavorites),
		navItem("Login", PageLogin),
		navItem("Register", PageRegister),
		navItem("About", PageAbout),
	}
}

func renderMenu(items []menuItem, idx int, current Route, userName string) string {
	var b strings.Builder
	if userName != "" {
		b.WriteString("Logged in as ")
		b.WriteString(userName)
		b.WriteString("\n\n")
	}
	for i, item := range items {
		line := cursor(i == idx) + item.label
		if item.action == actionNavigate && item.route.Page == current.Page {
			line += "  •"
		}
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage("MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ esc: close")
}
