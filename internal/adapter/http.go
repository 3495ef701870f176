package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-story-keeper/internal/config"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/go-resty/resty/v2"
)

const defaultPageSize = 20

type httpStoryAPI struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPStoryAPI constructs the resty implementation of [StoryAPI].
// It normalises the base URL from adapterCfg.BaseURL and applies the request
// timeout. A non-nil transport replaces the default network transport.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPStoryAPI(adapterCfg config.ClientAdapter, tokens TokenSource, transport http.RoundTripper, logger *logger.Logger) (StoryAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, transport)

	return &httpStoryAPI{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [StoryAPI]. POST /register.
func (h *httpStoryAPI) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/register")
	if err != nil {
		return requestError("register", err)
	}

	return mapHTTPError(resp)
}

// Login implements [StoryAPI]. POST /login; the token is read from
// loginResult.
func (h *httpStoryAPI) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/login")
	if err != nil {
		return models.LoginResult{}, requestError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	if lr.LoginResult.Token == "" {
		return models.LoginResult{}, fmt.Errorf("%w: login result has no token", ErrEmptyResponse)
	}

	return lr.LoginResult, nil
}

// GetStories implements [StoryAPI]. GET /stories?page&size[&location=1].
func (h *httpStoryAPI) GetStories(ctx context.Context, query models.StoryListQuery) ([]models.Story, error) {
	page, size := query.Page, query.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	req, err := h.optionalAuthRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("size", strconv.Itoa(size))
	if query.WithLocation {
		req.SetQueryParam("location", "1")
	}

	resp, err := req.Get("/stories")
	if err != nil {
		return nil, requestError("get stories", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr models.StoryListResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode stories response: %w", err)
	}
	if sr.ListStory == nil {
		return []models.Story{}, nil
	}

	return sr.ListStory, nil
}

// GetStoryByID implements [StoryAPI]. GET /stories/{id}.
func (h *httpStoryAPI) GetStoryByID(ctx context.Context, id string) (models.Story, error) {
	req, err := h.optionalAuthRequest(ctx)
	if err != nil {
		return models.Story{}, err
	}

	resp, err := req.
		SetPathParam("id", id).
		Get("/stories/{id}")
	if err != nil {
		return models.Story{}, requestError("get story", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Story{}, err
	}

	var sr models.StoryResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.Story{}, fmt.Errorf("decode story response: %w", err)
	}

	return sr.Story, nil
}

// PostStory implements [StoryAPI]. POST /stories as multipart/form-data
// with the fields photo, description, lat and lon. Coordinates are sent only
// when present; zero is a valid coordinate.
func (h *httpStoryAPI) PostStory(ctx context.Context, story models.NewStory) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	contentType := story.PhotoContentType
	if contentType == "" {
		contentType = http.DetectContentType(story.Photo)
	}
	fileName := story.PhotoName
	if fileName == "" {
		fileName = "photo"
	}

	form := map[string]string{"description": story.Description()}
	if story.Lat != nil {
		form["lat"] = strconv.FormatFloat(*story.Lat, 'f', -1, 64)
	}
	if story.Lon != nil {
		form["lon"] = strconv.FormatFloat(*story.Lon, 'f', -1, 64)
	}

	resp, err := req.
		SetMultipartField("photo", fileName, contentType, bytes.NewReader(story.Photo)).
		SetMultipartFormData(form).
		Post("/stories")
	if err != nil {
		return requestError("post story", err)
	}

	return mapHTTPError(resp)
}

// SubscribePush implements [StoryAPI]. POST /notifications/subscribe with
// {endpoint, keys:{p256dh, auth}}.
func (h *httpStoryAPI) SubscribePush(ctx context.Context, sub models.PushSubscription) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.PushSubscription{Endpoint: sub.Endpoint, Keys: sub.Keys}).
		Post("/notifications/subscribe")
	if err != nil {
		return requestError("subscribe push", err)
	}

	return mapHTTPError(resp)
}

// UnsubscribePush implements [StoryAPI]. POST /notifications/unsubscribe
// with the subscription wrapped as {subscription: ...}.
func (h *httpStoryAPI) UnsubscribePush(ctx context.Context, sub models.PushSubscription) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.UnsubscribeRequest{Subscription: sub}).
		Post("/notifications/unsubscribe")
	if err != nil {
		return requestError("unsubscribe push", err)
	}

	return mapHTTPError(resp)
}

// SendTestPush implements [StoryAPI]. POST /notifications/test.
func (h *httpStoryAPI) SendTestPush(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/notifications/test")
	if err != nil {
		return requestError("send test push", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request carrying the bearer token, or
// [ErrEmptyToken] when there is none.
func (h *httpStoryAPI) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrEmptyToken
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// optionalAuthRequest attaches the token only when one is stored.
func (h *httpStoryAPI) optionalAuthRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.token(ctx)
	if err != nil {
		return nil, err
	}

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}

func (h *httpStoryAPI) token(ctx context.Context) (string, error) {
	if h.tokens == nil {
		return "", nil
	}

	token, err := h.tokens.Token(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpStoryAPI.token").
			Msg("failed to read session token")
		return "", fmt.Errorf("read session token: %w", err)
	}
	return strings.TrimSpace(token), nil
}

// requestError wraps a transport failure. Context cancellation is passed
// through so callers can tell it apart from a network outage.
func requestError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return fmt.Errorf("%w: %s request: %w", ErrNetwork, op, err)
}
