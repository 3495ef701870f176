package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/MKhiriev/go-story-keeper/internal/logger"
)

// Window is an open application window, such as the terminal UI.
type Window interface {
	// URL returns the route the window currently shows.
	URL() string
	// Focus brings the window forward.
	Focus(ctx context.Context) error
}

// OpenFunc opens target in a new window.
type OpenFunc func(ctx context.Context, target string) error

// Clients keeps the open windows. Windows register themselves and call the
// returned function when they close.
type Clients struct {
	mu      sync.Mutex
	windows map[int]Window
	nextID  int

	shellOrigin string
	open        OpenFunc
	logger      *logger.Logger
}

// NewClients returns a registry that opens new windows with open. Relative
// URLs are resolved against shellOrigin first. A nil open selects
// [BrowserOpener].
func NewClients(shellOrigin string, open OpenFunc, logger *logger.Logger) *Clients {
	if open == nil {
		open = BrowserOpener
	}
	return &Clients{
		windows:     make(map[int]Window),
		shellOrigin: strings.TrimRight(shellOrigin, "/"),
		open:        open,
		logger:      logger,
	}
}

// Register adds w and returns the function that removes it.
func (c *Clients) Register(w Window) (unregister func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.windows[id] = w

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.windows, id)
	}
}

// Focus brings forward the first window showing url.
func (c *Clients) Focus(ctx context.Context, url string) (bool, error) {
	c.mu.Lock()
	var match Window
	for id := 0; id < c.nextID && match == nil; id++ {
		if w, ok := c.windows[id]; ok && w.URL() == url {
			match = w
		}
	}
	c.mu.Unlock()

	if match == nil {
		return false, nil
	}
	if err := match.Focus(ctx); err != nil {
		return false, fmt.Errorf("focus window: %w", err)
	}
	return true, nil
}

// Open opens url in a new window.
func (c *Clients) Open(ctx context.Context, url string) error {
	target := url
	if strings.HasPrefix(target, "/") && c.shellOrigin != "" {
		target = c.shellOrigin + target
	}

	c.logger.Debug().
		Str("func", "Clients.Open").
		Str("url", target).
		Msg("opening window")
	return c.open(ctx, target)
}

// BrowserOpener opens target with the desktop's default browser.
func BrowserOpener(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	default:
		return fmt.Errorf("%w on %s", ErrNoOpener, runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrNoOpener, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
