// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-travel-booking/models"
)

// FormValidator implements Validator for LoginForm, RegistrationForm,
// PaymentForm and TipForm, as values or pointers.
type FormValidator struct {
	users UserLookup
	now   func() time.Time
}

// NewFormValidator builds a FormValidator. users backs the username
// availability rule; now supplies "today" for date rules and defaults to
// time.Now when nil.
func NewFormValidator(users UserLookup, now func() time.Time) *FormValidator {
	if now == nil {
		now = time.Now
	}
	return &FormValidator{users: users, now: now}
}

// Validate dispatches form to the matching rule set.
func (v *FormValidator) Validate(ctx context.Context, form any) (models.ValidationResult, error) {
	switch value := form.(type) {
	case models.LoginForm:
		return ValidateLogin(value), nil
	case *models.LoginForm:
		return ValidateLogin(*value), nil

	case models.RegistrationForm:
		return ValidateRegistration(ctx, value, v.users, v.now())
	case *models.RegistrationForm:
		return ValidateRegistration(ctx, *value, v.users, v.now())

	case models.PaymentForm:
		return ValidatePayment(value, v.now()), nil
	case *models.PaymentForm:
		return ValidatePayment(*value, v.now()), nil

	case models.TipForm:
		return ValidateTip(value), nil
	case *models.TipForm:
		return ValidateTip(*value), nil

	default:
		return models.ValidationResult{}, ErrUnsupportedType
	}
}
