package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-booking/models"
)

var allowedImageTypes = []string{"image/webp", "image/png", "image/jpeg", "image/jpg"}

// ValidateRegistration collects every violated registration rule. Text
// fields are trimmed first; the password is checked as entered.
//
// Messages appear in this order: name, last name, email format, email
// confirmation, birth date, username length, username availability,
// password, profile image. users may be nil, in which case every username
// counts as free.
func ValidateRegistration(ctx context.Context, form models.RegistrationForm, users UserLookup, now time.Time) (models.ValidationResult, error) {
	f := form.Normalized()
	var errs []string

	if runeLen(f.Name) < 3 {
		errs = append(errs, MsgNameTooShort)
	}

	surnames := strings.Fields(f.LastName)
	if len(surnames) < 2 {
		errs = append(errs, MsgLastNameTwoWords)
	} else {
		for _, s := range surnames {
			if runeLen(s) < 3 {
				errs = append(errs, MsgLastNameWordTooShort)
				break
			}
		}
	}

	if !IsValidEmail(f.Email) {
		errs = append(errs, MsgEmailInvalid)
	}
	if f.Email != f.ConfirmEmail {
		errs = append(errs, MsgEmailMismatch)
	}

	if f.BirthDate != "" {
		errs = append(errs, birthDateErrors(f.BirthDate, now)...)
	}

	if runeLen(f.Username) < 5 {
		errs = append(errs, MsgUsernameTooShort)
	}

	if users != nil {
		taken, err := users.UsernameExists(ctx, f.Username)
		if err != nil {
			return models.ValidationResult{}, fmt.Errorf("%w: %w", ErrUserLookup, err)
		}
		if taken {
			errs = append(errs, MsgUsernameTaken)
		}
	}

	if msg, ok := ValidatePassword(f.Password); !ok {
		errs = append(errs, msg)
	}

	if f.ProfilePicture != nil && !isAllowedImageType(f.ProfilePicture.MIMEType) {
		errs = append(errs, MsgProfileImageFormat)
	}

	return models.NewValidationResult(errs), nil
}

// birthDateErrors runs the three independent birth date checks. An
// unparseable date yields only the invalid-date message.
func birthDateErrors(value string, now time.Time) []string {
	birth, ok := parseDate(value)
	if !ok {
		return []string{MsgBirthDateInvalid}
	}

	var errs []string
	today := dateOnly(now)
	if birth.After(today) {
		errs = append(errs, MsgBirthDateInFuture)
	}
	if birth.Before(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		errs = append(errs, MsgBirthDateInvalid)
	}
	if today.Year()-birth.Year() < 13 {
		errs = append(errs, MsgTooYoung)
	}
	return errs
}

func isAllowedImageType(mimeType string) bool {
	for _, t := range allowedImageTypes {
		if mimeType == t {
			return true
		}
	}
	return false
}
