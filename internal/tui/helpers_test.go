package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/service"
	"github.com/MKhiriev/go-story-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeAuth struct {
	authenticated bool
	name          string

	loginResult models.LoginResult
	loginErr    error
	loginReq    models.LoginRequest

	registerErr error
	registerReq models.RegisterRequest

	logoutErr error
	logouts   int
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) error {
	f.registerReq = req
	return f.registerErr
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (models.LoginResult, error) {
	f.loginReq = req
	if f.loginErr != nil {
		return models.LoginResult{}, f.loginErr
	}
	f.authenticated = true
	f.name = f.loginResult.Name
	return f.loginResult, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.authenticated = false
	f.name = ""
	return nil
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.authenticated }

func (f *fakeAuth) UserName(context.Context) string { return f.name }

type fakeStories struct {
	stories []models.Story
	listErr error
	queries []models.StoryListQuery

	story  models.Story
	getErr error

	created   []models.NewStory
	queued    bool
	createErr error

	pending []models.OfflineStory
}

func (f *fakeStories) List(_ context.Context, q models.StoryListQuery) ([]models.Story, error) {
	f.queries = append(f.queries, q)
	return f.stories, f.listErr
}

func (f *fakeStories) Get(context.Context, string) (models.Story, error) {
	return f.story, f.getErr
}

func (f *fakeStories) Create(_ context.Context, s models.NewStory) (bool, error) {
	f.created = append(f.created, s)
	return f.queued, f.createErr
}

func (f *fakeStories) Pending(context.Context) ([]models.OfflineStory, error) {
	return f.pending, nil
}

type fakeFavorites struct {
	items    []models.FavoriteStory
	listErr  error
	queries  []service.FavoriteQuery
	removed  []string
	favorite bool
	toggled  []string
}

func (f *fakeFavorites) Add(context.Context, models.Story) error { return nil }

func (f *fakeFavorites) Remove(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeFavorites) IsFavorite(context.Context, string) (bool, error) { return f.favorite, nil }

func (f *fakeFavorites) Toggle(_ context.Context, s models.Story) (bool, error) {
	f.toggled = append(f.toggled, s.ID)
	f.favorite = !f.favorite
	return f.favorite, nil
}

func (f *fakeFavorites) List(_ context.Context, q service.FavoriteQuery) ([]models.FavoriteStory, error) {
	f.queries = append(f.queries, q)
	return f.items, f.listErr
}

type fakePush struct {
	err   error
	calls []string
	sent  []models.Notification
}

func (f *fakePush) Init(context.Context) error { return nil }

func (f *fakePush) Subscribe(context.Context) error {
	f.calls = append(f.calls, "subscribe")
	return f.err
}

func (f *fakePush) Unsubscribe(context.Context) error {
	f.calls = append(f.calls, "unsubscribe")
	return f.err
}

func (f *fakePush) IsSubscribed(context.Context) (bool, error) { return false, nil }

func (f *fakePush) SendTestNotification(_ context.Context, n models.Notification) error {
	f.calls = append(f.calls, "test")
	f.sent = append(f.sent, n)
	return f.err
}

func (f *fakePush) SendServerTestPush(context.Context) error {
	f.calls = append(f.calls, "server")
	return f.err
}

type fakeAppInfo struct{}

func (fakeAppInfo) GetAppVersion(context.Context) string { return "v1.0.0" }

func (fakeAppInfo) GetCacheVersion(context.Context) string { return "berbagi-cerita-v1" }

type fakeEvents struct {
	mu     sync.Mutex
	events []cache.Event
}

func (f *fakeEvents) Dispatch(_ context.Context, ev cache.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

type testEnv struct {
	*env
	auth      *fakeAuth
	stories   *fakeStories
	favorites *fakeFavorites
	push      *fakePush
	copied    []string
	files     map[string][]byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{
		auth:      &fakeAuth{},
		stories:   &fakeStories{},
		favorites: &fakeFavorites{},
		push:      &fakePush{},
		files:     map[string][]byte{},
	}
	te.env = &env{
		ctx:         context.Background(),
		auth:        te.auth,
		stories:     te.stories,
		favorites:   te.favorites,
		push:        te.push,
		appInfo:     fakeAppInfo{},
		buildInfo:   models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"),
		shellOrigin: "http://shell.example",
		readFile: func(name string) ([]byte, error) {
			data, ok := te.files[name]
			if !ok {
				return nil, errFileMissing
			}
			return data, nil
		},
		copyText: func(text string) error {
			te.copied = append(te.copied, text)
			return nil
		},
	}
	return te
}

var errFileMissing = &fileError{"no such file"}

type fileError struct{ msg string }

func (e *fileError) Error() string { return e.msg }

// run executes cmd and returns the produced messages with batches
// flattened. Only use it for commands that do not wait on timers.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(p page, s string) page {
	for _, r := range s {
		p, _ = p.Update(keyRunes(string(r)))
	}
	return p
}
