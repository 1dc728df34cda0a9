package service

import (
	"errors"
	"strings"
)

var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrNoActiveSession    = errors.New("no active session")
	ErrCorruptedSession   = errors.New("stored session is corrupted")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPrivacyNotAccepted = errors.New("privacy policy not accepted")
	ErrImageEncoding      = errors.New("failed to encode profile image")
	ErrNotLoggedIn        = errors.New("login required")
	ErrNoSelectedPackage  = errors.New("no package selected")
	ErrPackageNotFound    = errors.New("package not found")
	ErrUnknownTier        = errors.New("unknown storage tier")
)

// ValidationError carries the violated form rules. It matches
// ErrValidationFailed with errors.Is.
type ValidationError struct {
	// Header is shown above the list, empty for forms without one.
	Header string
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Message renders the error the way the user sees it: the header, a blank
// line, then one rule per line.
func (e *ValidationError) Message() string {
	body := strings.Join(e.Errors, "\n")
	if e.Header == "" {
		return body
	}
	return e.Header + "\n\n" + body
}
