package dialect

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// WarnLongHeaders returns one advisory per header longer than maxLen characters.
// It never modifies the headers.
func WarnLongHeaders(headers []string, maxLen int) []string {
	var warnings []string
	for _, h := range headers {
		if n := utf8.RuneCountInString(h); n > maxLen {
			warnings = append(warnings, fmt.Sprintf("header %q has %d characters (> %d)", h, n, maxLen))
		}
	}
	return warnings
}

// CheckRequired returns one advisory per required header missing from headers.
func CheckRequired(headers []string, required []string) []string {
	var warnings []string
	for _, r := range required {
		if !slices.Contains(headers, r) {
			warnings = append(warnings, fmt.Sprintf("missing required header: %s", r))
		}
	}
	return warnings
}
