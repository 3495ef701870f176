package cache

import "errors"

var (
	ErrInvalidStorage = errors.New("invalid cache storage")
	ErrInstallFailed  = errors.New("cache install failed")
	ErrNotRegistered  = errors.New("interception layer is not registered")
	ErrWorkerStopped  = errors.New("worker stopped")
	ErrUnknownEvent   = errors.New("unknown worker event")
)
