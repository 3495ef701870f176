package service

import "errors"

var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrEmailTaken       = errors.New("email is already taken")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenIsExpired   = errors.New("token is expired")
	ErrTokenInvalid     = errors.New("token is invalid")

	ErrStoryNotFound    = errors.New("story not found")
	ErrRejected         = errors.New("request rejected by server")
	ErrPhotoTooLarge    = errors.New("photo is too large for the server")
	ErrServerError      = errors.New("server error")
	ErrNetwork          = errors.New("network unavailable")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
