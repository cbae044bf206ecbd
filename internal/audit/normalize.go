package audit

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonDigitPattern      = regexp.MustCompile(`\D`)
	nationalPhonePattern = regexp.MustCompile(`^(\+31|0)[1-9][0-9]{8}$`)
	longDigitRunPattern  = regexp.MustCompile(`[0-9]{5,}`)
)

// CountWords returns the number of whitespace-separated words in text.
// Empty input counts zero.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CanonicalizePhone normalizes a Dutch phone number to the "+31 D DDDDDDDD"
// form. It accepts international numbers with country code (31612345678),
// national numbers with a leading zero (0612345678), bare subscriber numbers
// (612345678, assumed mobile) and already formatted values. Anything else is
// returned unchanged rather than rejected.
func CanonicalizePhone(raw string) string {
	if raw == "" {
		return raw
	}

	digits := nonDigitPattern.ReplaceAllString(raw, "")

	var subscriber string
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "31"):
		subscriber = digits[2:]
	case len(digits) == 10 && digits[0] == '0':
		subscriber = digits[1:]
	case len(digits) == 9:
		subscriber = digits
	default:
		return raw
	}

	return fmt.Sprintf("+31 %s %s", subscriber[:1], subscriber[1:])
}

// IsValidNationalPhone reports whether raw canonicalizes to a valid number
// in the Dutch national numbering plan: +31 or a leading zero, followed by
// a nonzero digit and eight more digits.
func IsValidNationalPhone(raw string) bool {
	if raw == "" {
		return false
	}

	canonical := CanonicalizePhone(raw)
	stripped := strings.NewReplacer(" ", "", "-", "").Replace(canonical)
	return nationalPhonePattern.MatchString(stripped)
}

// ContainsKeyword reports whether needle occurs in haystack, ignoring case.
// Missing input on either side is false, never an error.
func ContainsKeyword(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// HasCleanSlug reports whether a slug is free of underscores and long digit
// runs, the two patterns that make listing URLs look machine-generated.
func HasCleanSlug(slug string) bool {
	if slug == "" {
		return false
	}
	return !strings.Contains(slug, "_") && !longDigitRunPattern.MatchString(slug)
}
