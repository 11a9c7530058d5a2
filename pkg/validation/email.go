package validation

import (
	"net/mail"
	"strings"
)

// ValidEmail reports whether s is a bare RFC 5322 address. Addresses with a
// display name ("Ana <ana@example.cl>") are rejected, since the stored value
// must be the plain address.
func ValidEmail(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	addr, err := mail.ParseAddress(trimmed)
	return err == nil && addr.Address == trimmed
}
