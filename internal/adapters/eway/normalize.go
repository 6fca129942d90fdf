package eway

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeCardNumber removes spaces and hyphens from a card number and
// nothing else. Idempotent; encrypted card values pass through untouched
// apart from any embedded separators.
func NormalizeCardNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)
}

// NormalizeExpiryYear reduces a year to the two digits the gateway expects,
// zero-padded (2030 -> "30", 5 -> "05"). Inverse of ExpandExpiryYear for
// years 2000-2099.
func NormalizeExpiryYear(year int) string {
	return fmt.Sprintf("%02d", year%100)
}

// ExpandExpiryYear applies the 20-prefix rule used by card entry forms,
// mapping a bare two-digit year into the 2000s. Four-digit years pass
// through unchanged.
func ExpandExpiryYear(year int) int {
	if year >= 0 && year < 100 {
		return 2000 + year
	}
	return year
}

// FormatExpiryMonth renders an expiry month zero-padded to two digits
func FormatExpiryMonth(month int) string {
	return fmt.Sprintf("%02d", month)
}

// NormalizeCountry trims and lower-cases a 2-letter country code
func NormalizeCountry(country string) string {
	return strings.ToLower(strings.TrimSpace(country))
}

// CleanString trims surrounding whitespace. Fields that clean to empty are
// omitted from gateway requests entirely.
func CleanString(s string) string {
	return strings.TrimSpace(s)
}

// AmountToMinorUnits converts a decimal currency amount into the gateway's
// minor-unit integer string: 100.00 -> "10000". Rounds half away from zero
// for sub-cent inputs.
func AmountToMinorUnits(amount decimal.Decimal) string {
	return amount.Shift(2).Round(0).String()
}
