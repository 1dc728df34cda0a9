// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StorageTier selects one of the two lifetimes offered by the key-value storage.
type StorageTier int

const (
	// DurableTier survives application restarts.
	DurableTier StorageTier = iota + 1

	// EphemeralTier lives only as long as the running process.
	EphemeralTier
)

// String returns a short, log-friendly tier name.
func (t StorageTier) String() string {
	switch t {
	case DurableTier:
		return "durable"
	case EphemeralTier:
		return "ephemeral"
	default:
		return "unknown"
	}
}

// Session is the single record describing who is currently logged in.
// At most one session exists at a time and it lives in exactly one tier.
type Session struct {
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	ProfilePicture *string   `json:"profilePicture"`
	LoginTime      time.Time `json:"loginTime"`

	// RememberMe reports whether the session was written to the durable tier.
	RememberMe bool `json:"rememberMe"`
}

// FullName joins first name and surnames for display.
func (s Session) FullName() string {
	if s.LastName == "" {
		return s.Name
	}
	return s.Name + " " + s.LastName
}
