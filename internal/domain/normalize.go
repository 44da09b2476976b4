package domain

import (
	"strings"
)

// NormalizeText prepares user-supplied filter text for comparison:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved; exact filters compare against stored labels verbatim.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeOptional normalizes s and returns nil when nothing is left.
func NormalizeOptional(s string) *string {
	n := NormalizeText(s)
	if n == "" {
		return nil
	}
	return &n
}
