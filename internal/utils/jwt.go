package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenHasNoExpiry is returned by [TokenExpiry] for tokens without an
// exp claim.
var ErrTokenHasNoExpiry = errors.New("token has no expiry")

// TokenExpiry reads the exp claim of a bearer token without verifying its
// signature. The client never holds the signing key; the remote API stays
// the authority on validity and the value is only used to skip requests
// that would certainly be rejected.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(tokenString), jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrTokenHasNoExpiry
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString carries an exp claim that lies
// before now. Opaque tokens and tokens without exp are treated as live.
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
