package validators

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the YYYY-MM-DD format of birth and expiration dates.
const DateLayout = "2006-01-02"

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsOnly = regexp.MustCompile(`^\d+$`)
	cvvRegex   = regexp.MustCompile(`^\d{3}$`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// dateOnly returns the calendar date of t as UTC midnight, comparable with
// dates from parseDate.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
