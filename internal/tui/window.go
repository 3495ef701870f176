package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// window exposes the running UI to the notification click handler as an
// open application window.
type window struct {
	mu   sync.Mutex
	url  string
	send func(tea.Msg)
}

func (w *window) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.url
}

func (w *window) setURL(url string) {
	w.mu.Lock()
	w.url = url
	w.mu.Unlock()
}

func (w *window) attach(send func(tea.Msg)) {
	w.mu.Lock()
	w.send = send
	w.mu.Unlock()
}

// Focus tells the UI a notification was opened on the current page.
func (w *window) Focus(ctx context.Context) error {
	w.mu.Lock()
	send, url := w.send, w.url
	w.mu.Unlock()

	if send != nil {
		send(focusMsg{url: url})
	}
	return nil
}
