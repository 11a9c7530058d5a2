package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPhone rejects anything that is not a Chilean mobile number.
var ErrInvalidPhone = errors.New("formato de teléfono inválido, use +56 9 1234 5678 o 912345678")

var phoneCleaner = strings.NewReplacer(" ", "", "-", "", "+", "")

// NormalizePhone reformats a Chilean mobile number as "+56 9 XXXX XXXX".
// Accepted inputs after stripping spaces, dashes and plus signs:
//
//	912345678     local form, nine digits
//	56912345678   with country and trunk prefix
//	569123456789  twelve digits: already international, returned as given
func NormalizePhone(phone string) (string, error) {
	stripped := phoneCleaner.Replace(phone)
	if !allDigits(stripped) {
		return "", ErrInvalidPhone
	}

	switch {
	case len(stripped) == 9 && stripped[0] == '9':
		return fmt.Sprintf("+56 %s %s %s", stripped[:1], stripped[1:5], stripped[5:]), nil
	case len(stripped) == 11 && strings.HasPrefix(stripped, "569"):
		return fmt.Sprintf("+56 %s %s %s", stripped[2:3], stripped[3:7], stripped[7:]), nil
	case len(stripped) == 12 && strings.HasPrefix(stripped, "569"):
		// Stored as given to avoid rewriting data already in full form.
		return phone, nil
	}
	return "", ErrInvalidPhone
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
