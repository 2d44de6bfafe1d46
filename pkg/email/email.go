// Package email provides small helpers for working with email addresses.
package email

import (
	"strings"
	"unicode"
)

// DisplayName derives a human-friendly name from the local part of an email
// address. "jane.doe@example.com" becomes "Jane Doe"; addresses with an
// unhelpful local part fall back to "Participant".
func DisplayName(address string) string {
	localPart := address
	if at := strings.IndexByte(address, '@'); at > 0 {
		localPart = address[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return "Participant"
	}

	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
