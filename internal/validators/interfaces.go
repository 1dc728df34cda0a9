// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the form rules of the booking client: login,
// registration, payment and tips.
//
// Every rule set returns a models.ValidationResult with the violated rules
// as user-facing messages in a fixed order. A Go error is only returned when
// validation itself could not run (unsupported input, failing user lookup).
//
// Usage patterns:
//  1. Inject a FormValidator into services and call Validate with any form.
//  2. Call the exported Validate* functions directly when the inputs are
//     already at hand (tests, UI-side pre-checks).
package validators

import (
	"context"

	"github.com/MKhiriev/go-travel-booking/models"
)

// Validator validates one of the form types from the models package.
type Validator interface {
	// Validate checks form and reports every violated rule. It returns
	// ErrUnsupportedType for values that are not a known form.
	Validate(ctx context.Context, form any) (models.ValidationResult, error)
}

// UserLookup answers whether a username is already registered. Matching is
// exact and case-sensitive.
type UserLookup interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
}
