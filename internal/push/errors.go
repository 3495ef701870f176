package push

import "errors"

var (
	ErrPermissionDenied     = errors.New("notification permission denied")
	ErrNotReady             = errors.New("interception layer is not registered")
	ErrServerKeyMismatch    = errors.New("subscription exists with a different application server key")
	ErrUnknownSubscription  = errors.New("unknown push subscription")
	ErrUnsupportedEncoding  = errors.New("unsupported content encoding")
	ErrMalformedMessage     = errors.New("malformed push message")
	ErrDecryptionFailed     = errors.New("push message decryption failed")
	ErrInvalidAuthorization = errors.New("invalid vapid authorization")
)
