// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// LoginForm is the raw input of the login screen.
type LoginForm struct {
	Username   string
	Password   string
	RememberMe bool
}

// ProfileImage is an uploaded profile picture before encoding.
type ProfileImage struct {
	FileName string
	MIMEType string
	Data     []byte
}

// RegistrationForm is the raw input of the registration screen.
type RegistrationForm struct {
	Name         string
	LastName     string
	Email        string
	ConfirmEmail string

	// BirthDate is optional, YYYY-MM-DD.
	BirthDate string
	Username  string
	Password  string

	// ProfilePicture is optional.
	ProfilePicture *ProfileImage

	// AcceptedPrivacy must be set before the form is processed at all.
	AcceptedPrivacy bool
}

// Normalized trims every text field except the password.
func (f RegistrationForm) Normalized() RegistrationForm {
	f.Name = strings.TrimSpace(f.Name)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.ConfirmEmail = strings.TrimSpace(f.ConfirmEmail)
	f.BirthDate = strings.TrimSpace(f.BirthDate)
	f.Username = strings.TrimSpace(f.Username)
	return f
}

// PaymentForm is the raw input of the checkout screen.
// CardNumber and CVV must never leave the purchase workflow.
type PaymentForm struct {
	FullName       string
	Email          string
	CardType       string
	CardNumber     string
	CardholderName string

	// ExpirationDate is YYYY-MM-DD.
	ExpirationDate string
	CVV            string
}

// Normalized trims the free-text fields. CardType is a selection and is
// kept as is.
func (f PaymentForm) Normalized() PaymentForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.CardNumber = strings.TrimSpace(f.CardNumber)
	f.CardholderName = strings.TrimSpace(f.CardholderName)
	f.ExpirationDate = strings.TrimSpace(f.ExpirationDate)
	f.CVV = strings.TrimSpace(f.CVV)
	return f
}

// TipForm is the raw input of the new-tip form.
type TipForm struct {
	Title       string
	Description string
}

// Normalized trims title and description.
func (f TipForm) Normalized() TipForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	return f
}

// CardTypes lists the selectable card types of the checkout form.
var CardTypes = []string{"visa", "mastercard", "amex"}
