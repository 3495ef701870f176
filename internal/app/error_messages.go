// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants.
//
// The Msg* constants are the message strings the remote story API places in
// the "message" field of its error envelope. The service layer matches them
// to tell apart failures that share an HTTP status code (a 401 for an
// unknown user versus an expired token, for instance).
package app

const (
	// MsgEmailTaken is returned by POST /register when the address already
	// has an account.
	MsgEmailTaken = "Email is already taken"

	// MsgUserNotFound is returned by POST /login for an unknown email.
	MsgUserNotFound = "User not found"

	// MsgInvalidPassword is returned by POST /login for a wrong password.
	MsgInvalidPassword = "Invalid password"

	// MsgMissingAuthentication is returned when a protected endpoint is
	// called without a bearer token.
	MsgMissingAuthentication = "Missing authentication"

	// MsgInvalidToken is returned for a malformed or forged bearer token.
	MsgInvalidToken = "Invalid token"

	// MsgInvalidTokenSignature is returned when the token signature does
	// not verify.
	MsgInvalidTokenSignature = "Invalid token signature"

	// MsgTokenExpired is returned when the bearer token is past its expiry.
	MsgTokenExpired = "Token expired"

	// MsgStoryNotFound is returned by GET /stories/{id}.
	MsgStoryNotFound = "Story not found"

	// MsgPayloadTooLarge is returned when the uploaded photo exceeds the
	// server's limit.
	MsgPayloadTooLarge = "Payload content length greater than maximum allowed"
)
