// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches storage.
//
// Every rejection matches [ErrValidation] through [errors.Is] and also wraps
// a field-specific sentinel (for example [ErrPhoneTooShort]), so transport
// layers map the whole family to a single status while still reporting which
// field failed.
//
// Validate accepts an optional list of field names (the Field* constants) to
// restrict validation to a subset of fields. Without it a default set for the
// value's type is checked.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
