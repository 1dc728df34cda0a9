// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account as persisted in the users collection.
//
// Password is kept in plaintext and compared verbatim at login. This is a
// known flaw of the booking site's storage format; existing fixtures depend
// on it, so no hashing is applied anywhere in this module.
type User struct {
	// Username is the unique login of the account (case-sensitive).
	Username string `json:"username"`

	// Password is the plaintext account password.
	Password string `json:"password"`

	// Name is the first name shown in greetings and as tip author.
	Name string `json:"name"`

	// LastName holds one or more surnames separated by spaces.
	LastName string `json:"lastName"`

	// Email is the contact address entered at registration.
	Email string `json:"email"`

	// BirthDate is the date of birth in YYYY-MM-DD form, empty if not given.
	BirthDate string `json:"birthDate,omitempty"`

	// ProfilePicture is the profile image encoded as a data URL, nil if none.
	ProfilePicture *string `json:"profilePicture"`

	// RegistrationDate is the moment the account was stored.
	RegistrationDate time.Time `json:"registrationDate,omitzero"`
}

// Identity builds the session identity fields from the stored account.
func (u User) Identity() Session {
	return Session{
		Username:       u.Username,
		Name:           u.Name,
		LastName:       u.LastName,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}
