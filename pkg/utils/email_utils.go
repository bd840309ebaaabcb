package utils

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases an address.
// Every store lookup and insert uses the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
