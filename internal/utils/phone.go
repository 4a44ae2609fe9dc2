package utils

import (
	"regexp"
	"strings"
)

var canonicalPhoneRe = regexp.MustCompile(`^7\d{10}$`)

// NormalizePhone strips every non-digit character and makes sure the result
// starts with the country code 7. It never fails; length is checked by IsCanonicalPhone.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 1)
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "7") {
		return digits
	}
	return "7" + digits
}

// IsCanonicalPhone reports whether phone is an 11-digit number starting with 7
func IsCanonicalPhone(phone string) bool {
	return canonicalPhoneRe.MatchString(phone)
}
