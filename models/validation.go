// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationResult is the outcome of validating one form: a pass/fail flag and
// the violated rules as human-readable messages, in rule order.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// NewValidationResult builds a result from the collected messages.
func NewValidationResult(errs []string) ValidationResult {
	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
