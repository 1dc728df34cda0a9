package validators

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-travel-booking/models"
)

var validCardLengths = []int{13, 15, 16, 19}

// ValidatePayment collects every violated checkout rule. The expiration date
// must be strictly after the date part of now.
func ValidatePayment(form models.PaymentForm, now time.Time) models.ValidationResult {
	f := form.Normalized()
	var errs []string

	if runeLen(f.FullName) < 3 {
		errs = append(errs, MsgPaymentFullName)
	}
	if !IsValidEmail(f.Email) {
		errs = append(errs, MsgPaymentEmail)
	}
	if f.CardType == "" {
		errs = append(errs, MsgPaymentCardType)
	}

	digits := stripWhitespace(f.CardNumber)
	if !slices.Contains(validCardLengths, runeLen(digits)) {
		errs = append(errs, MsgPaymentCardLength)
	}
	if !digitsOnly.MatchString(digits) {
		errs = append(errs, MsgPaymentCardDigits)
	}

	if runeLen(f.CardholderName) < 3 {
		errs = append(errs, MsgPaymentCardholder)
	}

	if f.ExpirationDate == "" {
		errs = append(errs, MsgPaymentExpiryRequired)
	} else if exp, ok := parseDate(f.ExpirationDate); !ok || !exp.After(dateOnly(now)) {
		errs = append(errs, MsgPaymentExpiryPast)
	}

	if runeLen(f.CVV) != 3 {
		errs = append(errs, MsgPaymentCVVLength)
	}
	if !cvvRegex.MatchString(f.CVV) {
		errs = append(errs, MsgPaymentCVVDigits)
	}

	return models.NewValidationResult(errs)
}

// CardDigits returns the card number with all whitespace removed.
func CardDigits(cardNumber string) string {
	return stripWhitespace(cardNumber)
}
