// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the remote API.
//
// Validation runs client side so that malformed forms never cost a network
// round trip. Failures are reported as a [*ValidationError] listing every
// offending field, which lets the terminal UI render each message next to
// its input.
//
// Callers may restrict validation to a subset of fields, which is how
// inputs are validated while the user is still typing.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
