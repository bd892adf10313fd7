// internal/app/system/normalize/normalize.go

// Package normalize cleans user-facing string fields before they are stored
// or compared. Stores call these so every write goes through the same rules.
package normalize

import "strings"

// Name collapses internal runs of whitespace and trims the ends.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Email trims and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone keeps digits and a leading plus, dropping separators.
func Phone(s string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PromoCode uppercases and trims a promo code.
func PromoCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Truncate limits a free-text field to max runes. Free text from the public
// site is truncated before use to bound memory and outbound email size.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
