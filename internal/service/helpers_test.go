package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var pngPhoto = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// fakeSession is an in-memory Session.
type fakeSession struct {
	mu    sync.Mutex
	token string
	name  string
	err   error
}

func (s *fakeSession) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.err
}

func (s *fakeSession) SetLogin(_ context.Context, r models.LoginResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.token, s.name = r.Token, r.Name
	return nil
}

func (s *fakeSession) ClearLogin(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.token, s.name = "", ""
	return nil
}

func (s *fakeSession) UserName(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, s.err
}

func (s *fakeSession) IsAuthenticated(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err == nil && s.token != ""
}

// recordingRegistrar records registered sync tags.
type recordingRegistrar struct {
	mu   sync.Mutex
	tags []string
	err  error
}

func (r *recordingRegistrar) RegisterSync(_ context.Context, tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tag)
	return r.err
}

func (r *recordingRegistrar) registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.tags...)
}

// signedToken returns a JWT expiring at exp. The signature is irrelevant to
// the client, which never verifies it.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-1",
		"exp":    exp.Unix(),
	}).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return token
}

func coord(f float64) *float64 { return &f }

func validNewStory() models.NewStory {
	return models.NewStory{
		Title:            "Harbour at dusk",
		Body:             "Boats coming home as the lights go on.",
		Photo:            pngPhoto,
		PhotoName:        "harbour.png",
		PhotoContentType: "image/png",
		Lat:              coord(-8.65),
		Lon:              coord(115.21),
	}
}
