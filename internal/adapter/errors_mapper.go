package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-story-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.Header().Get(models.OfflineHeader) != "" {
		return fmt.Errorf("%w: %s", ErrNetwork, models.OfflineMessage)
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, message)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// responseMessage prefers the message field of the API envelope and falls
// back to the raw body, then to the status text.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope models.APIResponse
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
