package validators

import "github.com/MKhiriev/go-travel-booking/models"

// ValidateTip requires a title of 15+ and a description of 30+ characters
// after trimming. Both rules are reported.
func ValidateTip(form models.TipForm) models.ValidationResult {
	f := form.Normalized()
	var errs []string

	if runeLen(f.Title) < 15 {
		errs = append(errs, MsgTipTitleTooShort)
	}
	if runeLen(f.Description) < 30 {
		errs = append(errs, MsgTipDescriptionShort)
	}

	return models.NewValidationResult(errs)
}
