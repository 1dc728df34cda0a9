package validators

import (
	"strings"

	"github.com/MKhiriev/go-travel-booking/models"
)

// ValidateLogin requires a non-blank username and password.
func ValidateLogin(form models.LoginForm) models.ValidationResult {
	if strings.TrimSpace(form.Username) == "" || strings.TrimSpace(form.Password) == "" {
		return models.NewValidationResult([]string{MsgLoginFieldsRequired})
	}
	return models.NewValidationResult(nil)
}
