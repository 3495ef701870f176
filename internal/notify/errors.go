package notify

import "errors"

var (
	ErrNoServices     = errors.New("no notification services configured")
	ErrDeliveryFailed = errors.New("notification delivery failed")
	ErrNoOpener       = errors.New("no way to open a window")
)
