// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PurchaseStatusCompleted is the only status a stored purchase can have.
const PurchaseStatusCompleted = "completed"

// Purchase is a completed package booking.
//
// The full card number and the CVV are never part of this record; only the
// card type and the last four digits are kept.
type Purchase struct {
	ID           RecordID        `json:"id"`
	Package      *Package        `json:"package"`
	Buyer        Buyer           `json:"buyer"`
	Payment      PaymentSnapshot `json:"payment"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Status       string          `json:"status"`
}

// Buyer identifies the person who paid.
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentSnapshot is the non-sensitive part of the card used for a purchase.
type PaymentSnapshot struct {
	CardType       string `json:"cardType"`
	LastFourDigits string `json:"lastFourDigits"`
}
