package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/MKhiriev/go-story-keeper/internal/service"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// env is shared by every page.
type env struct {
	ctx context.Context

	auth      service.AuthService
	stories   service.StoryService
	favorites service.FavoriteService
	push      service.PushService
	appInfo   service.AppInfoService

	buildInfo   models.AppBuildInfo
	shellOrigin string

	readFile func(name string) ([]byte, error)
	copyText func(text string) error
}

// EventDispatcher hands worker events to the background worker.
type EventDispatcher interface {
	Dispatch(ctx context.Context, ev cache.Event) error
}

// RootModel is the TUI router:
// 1) keeps the active page and rebuilds the menu after every change
// 2) handles global hotkeys, the menu drawer and overlays
// 3) shows notifications delivered by the worker
// 4) delegates all other messages to the active page
type RootModel struct {
	env *env

	route    Route
	previous Route
	current  page

	menu      []menuItem
	menuOpen  bool
	menuIdx   int
	userName  string
	confirm   *confirmModel
	overlay   *errorOverlayModel
	status    string
	statusErr bool

	toasts <-chan models.Notification
	toast  *models.Notification
	events EventDispatcher
	window *window

	quitByUser bool
}

func newRootModel(e *env, start Route, toasts <-chan models.Notification, events EventDispatcher, w *window) *RootModel {
	r := &RootModel{
		env:    e,
		toasts: toasts,
		events: events,
		window: w,
	}
	r.switchTo(start)
	return r
}

func (r *RootModel) Init() tea.Cmd {
	return tea.Batch(r.current.Init(), r.waitForToast())
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if handled, cmd := r.handleGlobalKey(keyMsg); handled {
			return r, cmd
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		r.previous = r.route
		r.switchTo(msg.Route)
		r.setStatus(msg.Status, false)
		return r, r.current.Init()
	case backMsg:
		r.switchTo(r.previous)
		r.previous = Route{Page: PageHome}
		return r, r.current.Init()
	case statusMsg:
		if msg.err != nil {
			r.setStatus(humanizeError(msg.err), true)
		} else {
			r.setStatus(msg.text, false)
		}
		return r, nil
	case toastMsg:
		n := msg.notification
		r.toast = &n
		return r, r.waitForToast()
	case focusMsg:
		r.setStatus("Opened from a notification", false)
		return r, nil
	case pushDoneMsg:
		return r, r.handlePushDone(msg)
	case logoutDoneMsg:
		if msg.err != nil {
			r.setStatus(humanizeError(msg.err), true)
			return r, nil
		}
		return r, navigate(Route{Page: PageHome}, "You have been logged out")
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case r.overlay != nil:
		if key.Matches(msg, keys.enter, keys.esc) {
			r.overlay = nil
		}
		return true, nil
	case r.confirm != nil:
		switch {
		case key.Matches(msg, keys.yes):
			r.confirm = nil
			return true, r.cmdLogout()
		case key.Matches(msg, keys.no):
			r.confirm = nil
		}
		return true, nil
	case r.menuOpen:
		return true, r.updateMenu(msg)
	case key.Matches(msg, keys.menu):
		r.menuOpen = true
		r.menuIdx = 0
		return true, nil
	case r.toast != nil && key.Matches(msg, keys.open):
		n := *r.toast
		r.toast = nil
		return true, r.cmdNotificationClick(models.NotificationActionOpen, n)
	case r.toast != nil && key.Matches(msg, keys.dismiss):
		n := *r.toast
		r.toast = nil
		return true, r.cmdNotificationClick(models.NotificationActionClose, n)
	}
	return false, nil
}

func (r *RootModel) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc, keys.menu):
		r.menuOpen = false
	case key.Matches(msg, keys.up):
		if r.menuIdx > 0 {
			r.menuIdx--
		}
	case key.Matches(msg, keys.down):
		if r.menuIdx < len(r.menu)-1 {
			r.menuIdx++
		}
	case key.Matches(msg, keys.enter):
		r.menuOpen = false
		if r.menuIdx >= len(r.menu) {
			return nil
		}
		return r.selectMenuItem(r.menu[r.menuIdx])
	}
	return nil
}

func (r *RootModel) selectMenuItem(item menuItem) tea.Cmd {
	switch item.action {
	case actionNavigate:
		return navigate(item.route, "")
	case actionLogout:
		r.confirm = &confirmModel{message: "Log out of " + valueOrDash(r.userName) + "?"}
		return nil
	case actionSubscribe, actionUnsubscribe, actionTestNotification, actionServerTestPush:
		return r.cmdPush(item.action)
	}
	return nil
}

// switchTo builds the page for route and refreshes everything derived
// from the session.
func (r *RootModel) switchTo(route Route) {
	r.route = route
	r.current = newPage(r.env, route)
	r.menu = buildMenu(r.env.auth.IsAuthenticated(r.env.ctx))
	r.userName = r.env.auth.UserName(r.env.ctx)
	r.menuIdx = 0
	r.status = ""
	r.statusErr = false
	if r.window != nil {
		r.window.setURL(route.Path())
	}
}

func (r *RootModel) setStatus(text string, isErr bool) {
	r.status = text
	r.statusErr = isErr
}

func (r *RootModel) handlePushDone(msg pushDoneMsg) tea.Cmd {
	if msg.err != nil {
		if errors.Is(msg.err, push.ErrPermissionDenied) {
			r.overlay = &errorOverlayModel{
				message: "Notifications are blocked.\nAllow notifications for Story Keeper to use this feature.",
			}
			return nil
		}
		r.setStatus(humanizeError(msg.err), true)
		return nil
	}

	switch msg.action {
	case actionSubscribe:
		r.setStatus("Notifications enabled", false)
	case actionUnsubscribe:
		r.setStatus("Notifications disabled", false)
	case actionTestNotification:
		r.setStatus("Test notification sent", false)
	case actionServerTestPush:
		r.setStatus("Test push requested from the server", false)
	}
	return nil
}

func (r *RootModel) View() string {
	switch {
	case r.overlay != nil:
		return appStyle.Render(r.overlay.View())
	case r.confirm != nil:
		return appStyle.Render(r.confirm.View())
	case r.menuOpen:
		return appStyle.Render(renderMenu(r.menu, r.menuIdx, r.route, r.userName))
	}

	var b strings.Builder
	b.WriteString(r.current.View())
	if r.status != "" {
		b.WriteString("\n\n")
		if r.statusErr {
			b.WriteString(errorStyle.Render("Error: " + r.status))
		} else {
			b.WriteString(statusStyle.Render(r.status))
		}
	}
	if r.toast != nil {
		b.WriteString("\n\n")
		b.WriteString(renderToast(*r.toast))
	}
	return appStyle.Render(b.String())
}

func renderToast(n models.Notification) string {
	content := titleStyle.Render(n.Title) + "\n" + n.Body + "\n" +
		helpStyle.Render("ctrl+o: open │ ctrl+x: dismiss")
	return toastStyle.Render(content)
}

func (r *RootModel) waitForToast() tea.Cmd {
	if r.toasts == nil {
		return nil
	}
	ch := r.toasts
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return toastMsg{notification: n}
	}
}

func (r *RootModel) cmdNotificationClick(action string, n models.Notification) tea.Cmd {
	if r.events == nil {
		return nil
	}
	ctx, events := r.env.ctx, r.events
	return func() tea.Msg {
		err := events.Dispatch(ctx, cache.NotificationClickEvent{Action: action, Notification: n})
		if err != nil {
			return statusMsg{err: err}
		}
		return nil
	}
}

func (r *RootModel) cmdPush(action menuAction) tea.Cmd {
	ctx, svc := r.env.ctx, r.env.push
	return func() tea.Msg {
		var err error
		switch action {
		case actionSubscribe:
			err = svc.Subscribe(ctx)
		case actionUnsubscribe:
			err = svc.Unsubscribe(ctx)
		case actionTestNotification:
			err = svc.SendTestNotification(ctx, models.Notification{
				Body: "Notifications are working.",
			})
		case actionServerTestPush:
			err = svc.SendServerTestPush(ctx)
		}
		return pushDoneMsg{action: action, err: err}
	}
}

func (r *RootModel) cmdLogout() tea.Cmd {
	ctx, auth := r.env.ctx, r.env.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func navigate(route Route, status string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Route: route, Status: status}
	}
}

func goBack() tea.Msg {
	return backMsg{}
}
