// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken struct {
	token string
	err   error
}

func (s staticToken) Token(context.Context) (string, error) { return s.token, s.err }

func newTestAPI(t *testing.T, serverURL string, tokens TokenSource) *httpStoryAPI {
	t.Helper()

	a, err := NewHTTPStoryAPI(config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, tokens, nil, logger.Nop())
	require.NoError(t, err)
	return a.(*httpStoryAPI)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func ptr(f float64) *float64 { return &f }

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/register", r.URL.Path)

		var body models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.RegisterRequest{Name: "Sari", Email: "sari@example.com", Password: "secret123"}, body)

		writeJSON(w, http.StatusCreated, `{"error":false,"message":"User Created"}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL+"/v1", nil)
	err := a.Register(context.Background(), models.RegisterRequest{Name: "Sari", Email: "sari@example.com", Password: "secret123"})

	assert.NoError(t, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":true,"message":"Email is already taken"}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	err := a.Register(context.Background(), models.RegisterRequest{Email: "sari@example.com"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email is already taken")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"error":false,"message":"success","loginResult":{"userId":"user-1","name":"Sari","token":"tok"}}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "sari@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, models.LoginResult{UserID: "user-1", Name: "Sari", Token: "tok"}, got)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":true,"message":"Invalid password"}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid password")
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"error":false,"message":"success","loginResult":{}}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

// ── Stories ──────────────────────────────────────────────────────────────────

func TestGetStories_QueryAndOptionalToken(t *testing.T) {
	tests := []struct {
		name         string
		tokens       TokenSource
		query        models.StoryListQuery
		wantAuth     string
		wantPage     string
		wantSize     string
		wantLocation string
	}{
		{
			name:     "defaults without token",
			wantPage: "1",
			wantSize: "20",
		},
		{
			name:         "explicit paging with location and token",
			tokens:       staticToken{token: "tok"},
			query:        models.StoryListQuery{Page: 3, Size: 5, WithLocation: true},
			wantAuth:     "Bearer tok",
			wantPage:     "3",
			wantSize:     "5",
			wantLocation: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/stories", r.URL.Path)
				assert.Equal(t, tt.wantAuth, r.Header.Get("Authorization"))
				assert.Equal(t, tt.wantPage, r.URL.Query().Get("page"))
				assert.Equal(t, tt.wantSize, r.URL.Query().Get("size"))
				assert.Equal(t, tt.wantLocation, r.URL.Query().Get("location"))

				writeJSON(w, http.StatusOK, `{"error":false,"message":"ok","listStory":[
					{"id":"story-1","name":"Sari","description":"T\n\nB","photoUrl":"http://p/1.jpg","createdAt":"2024-01-01T00:00:00.000Z","lat":-6.2,"lon":106.8},
					{"id":"story-2","name":"Adi","description":"x","photoUrl":"","createdAt":"2024-01-02T00:00:00.000Z","lat":null,"lon":null}
				]}`)
			}))
			defer srv.Close()

			a := newTestAPI(t, srv.URL, tt.tokens)
			got, err := a.GetStories(context.Background(), tt.query)

			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "story-1", got[0].ID)
			assert.True(t, got[0].HasLocation())
			assert.InDelta(t, -6.2, *got[0].Lat, 1e-9)
			assert.False(t, got[1].HasLocation())
		})
	}
}

func TestGetStories_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"error":false,"message":"ok"}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	got, err := a.GetStories(context.Background(), models.StoryListQuery{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetStoryByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stories/story-1" {
			writeJSON(w, http.StatusNotFound, `{"error":true,"message":"Story not found"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"error":false,"message":"ok","story":{"id":"story-1","name":"Sari","description":"d","createdAt":"2024-01-01T00:00:00Z"}}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)

	got, err := a.GetStoryByID(context.Background(), "story-1")
	require.NoError(t, err)
	assert.Equal(t, "Sari", got.Name)

	_, err = a.GetStoryByID(context.Background(), "story-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostStory_Multipart(t *testing.T) {
	photo := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Title here\n\nBody text", r.FormValue("description"))
		assert.Equal(t, "0", r.FormValue("lat"))
		assert.Equal(t, "106.8", r.FormValue("lon"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cat.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		got, _ := io.ReadAll(file)
		assert.Equal(t, photo, got)

		writeJSON(w, http.StatusCreated, `{"error":false,"message":"Story created successfully"}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, staticToken{token: "tok"})
	err := a.PostStory(context.Background(), models.NewStory{
		Title:            "Title here",
		Body:             "Body text",
		Photo:            photo,
		PhotoName:        "cat.jpg",
		PhotoContentType: "image/jpeg",
		Lat:              ptr(0),
		Lon:              ptr(106.8),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPostStory_NoTokenSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, staticToken{})
	err := a.PostStory(context.Background(), models.NewStory{Title: "Title", Body: "Body body"})

	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Zero(t, calls)
}

func TestPostStory_TokenSourceError(t *testing.T) {
	a := newTestAPI(t, "http://127.0.0.1:1", staticToken{err: errors.New("db closed")})
	err := a.PostStory(context.Background(), models.NewStory{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db closed")
}

func TestPostStory_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAPI(t, url, staticToken{token: "tok"})
	err := a.PostStory(context.Background(), models.NewStory{Photo: []byte("x")})

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestGetStories_OfflineResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(models.OfflineHeader, "1")
		writeJSON(w, http.StatusServiceUnavailable, string(models.OfflineResponseBody()))
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, nil)
	_, err := a.GetStories(context.Background(), models.StoryListQuery{})

	require.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), models.OfflineMessage)
}

// ── Notifications ────────────────────────────────────────────────────────────

func TestSubscribeAndUnsubscribePush(t *testing.T) {
	sub := models.PushSubscription{
		Endpoint: "http://localhost:8787/push/abc",
		Keys:     models.PushKeys{P256dh: "pk", Auth: "au"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)

		switch r.URL.Path {
		case "/notifications/subscribe":
			assert.JSONEq(t, `{"endpoint":"http://localhost:8787/push/abc","keys":{"p256dh":"pk","auth":"au"}}`, string(body))
		case "/notifications/unsubscribe":
			assert.JSONEq(t, `{"subscription":{"endpoint":"http://localhost:8787/push/abc","keys":{"p256dh":"pk","auth":"au"}}}`, string(body))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"error":false,"message":"ok"}`)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, staticToken{token: "tok"})
	require.NoError(t, a.SubscribePush(context.Background(), sub))
	require.NoError(t, a.UnsubscribePush(context.Background(), sub))
}

func TestSendTestPush_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/test", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAPI(t, srv.URL, staticToken{token: "tok"})
	err := a.SendTestPush(context.Background())

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusInternalServerError))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "full url", in: "https://story-api.dicoding.dev/v1/", want: "https://story-api.dicoding.dev/v1"},
		{name: "no scheme", in: "localhost:8080", want: "https://localhost:8080"},
		{name: "spaces", in: "  http://a.b  ", want: "http://a.b"},
		{name: "empty", in: "", wantErr: true},
		{name: "no host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPStoryAPI_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPStoryAPI(config.ClientAdapter{}, nil, nil, logger.Nop())
	assert.Error(t, err)
}
