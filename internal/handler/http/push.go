package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-story-keeper/internal/cache"
	"github.com/MKhiriev/go-story-keeper/internal/logger"
	"github.com/MKhiriev/go-story-keeper/internal/push"
	"github.com/go-chi/chi/v5"
)

// pushRoute matches the endpoints minted by the local push platform.
const pushRoute = push.EndpointPath + "{id}"

// maxPushBodySize leaves headroom over the 4096-byte record web push
// senders produce.
const maxPushBodySize = 8 << 10

// receivePush accepts a web push message for the subscription in the path.
// Success is 201 Created, as push services answer.
func (h *Handler) receivePush(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	subscriptionID := chi.URLParam(r, "id")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPushBodySize))
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.receivePush").
			Str("subscription", subscriptionID).
			Msg("failed to read push body")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}

	err = h.receiver.Receive(r.Context(), push.Message{
		SubscriptionID:  subscriptionID,
		ContentEncoding: r.Header.Get("Content-Encoding"),
		Authorization:   r.Header.Get("Authorization"),
		Body:            body,
	})
	if err != nil {
		status := pushErrorStatus(err)
		log.Err(err).
			Str("func", "*Handler.receivePush").
			Str("subscription", subscriptionID).
			Int("status", status).
			Msg("push message rejected")
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func pushErrorStatus(err error) int {
	switch {
	case errors.Is(err, push.ErrUnknownSubscription):
		return http.StatusGone
	case errors.Is(err, push.ErrInvalidAuthorization):
		return http.StatusForbidden
	case errors.Is(err, push.ErrUnsupportedEncoding):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, push.ErrMalformedMessage), errors.Is(err, push.ErrDecryptionFailed):
		return http.StatusBadRequest
	case errors.Is(err, cache.ErrWorkerStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
