package validators

import "strings"

const passwordSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// ValidatePassword checks the password policy in a fixed order and stops at
// the first unmet rule. It returns that rule's message, or "" and true when
// the password is acceptable.
//
// Order: length >= 8, at least 2 digits, a special character, an uppercase
// letter, a lowercase letter. Only ASCII letters and digits count.
func ValidatePassword(password string) (string, bool) {
	if runeLen(password) < 8 {
		return MsgPasswordLength, false
	}

	var digits, special, upper, lower int
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		case strings.ContainsRune(passwordSpecialChars, r):
			special++
		}
	}

	switch {
	case digits < 2:
		return MsgPasswordDigits, false
	case special == 0:
		return MsgPasswordSpecial, false
	case upper == 0:
		return MsgPasswordUppercase, false
	case lower == 0:
		return MsgPasswordLowercase, false
	}

	return "", true
}
