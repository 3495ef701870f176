package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL. A non-nil transport
// replaces the default one, which is how the caching interceptor is plugged
// in front of the network; timeout is applied when positive.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://story-api.dicoding.dev/v1", 30*time.Second, nil)
//	resp, err := client.R().Get("/stories")
func NewHTTPClient(baseURL string, timeout time.Duration, transport http.RoundTripper) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if transport != nil {
		client.SetTransport(transport)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
