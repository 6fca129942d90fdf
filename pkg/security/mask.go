package security

import "strings"

// MaskCardNumber redacts a card number for log output, keeping the first six
// and last four digits (the non-sensitive BIN and suffix). Values too short
// to mask safely are fully redacted.
func MaskCardNumber(number string) string {
	const keepPrefix, keepSuffix = 6, 4

	if strings.HasPrefix(number, "eCrypted:") {
		// already encrypted client-side, log only the marker
		return "eCrypted:…"
	}
	if len(number) <= keepPrefix+keepSuffix {
		return strings.Repeat("X", len(number))
	}
	return number[:keepPrefix] + strings.Repeat("X", len(number)-keepPrefix-keepSuffix) + number[len(number)-keepSuffix:]
}
