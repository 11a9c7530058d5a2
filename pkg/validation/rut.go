package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Structural RUT failures. These are distinct from a checksum mismatch so
// callers can tell a malformed value apart from a wrongly typed one.
var (
	ErrRUTTooShort        = errors.New("el RUT debe tener al menos 8 dígitos")
	ErrRUTInvalidBody     = errors.New("la parte numérica del RUT debe contener solo dígitos")
	ErrRUTInvalidVerifier = errors.New("el dígito verificador debe ser un número o K")
)

// RUTChecksumError reports a well-formed RUT whose check character does not
// match the computed one.
type RUTChecksumError struct {
	Expected byte
}

func (e *RUTChecksumError) Error() string {
	return fmt.Sprintf("RUT inválido, el dígito verificador debería ser %c", e.Expected)
}

var rutCleaner = strings.NewReplacer(".", "", "-", "")

// ValidateRUT checks a Chilean RUT with its verifier character. Dots and
// dashes are ignored and the verifier is case-insensitive, so both
// "12.345.678-5" and "123456785" validate.
func ValidateRUT(rut string) error {
	clean := strings.ToUpper(rutCleaner.Replace(rut))
	if len(clean) < 8 {
		return ErrRUTTooShort
	}

	body := clean[:len(clean)-1]
	verifier := clean[len(clean)-1]

	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return ErrRUTInvalidBody
		}
	}
	if verifier != 'K' && (verifier < '0' || verifier > '9') {
		return ErrRUTInvalidVerifier
	}

	if expected := rutVerifier(body); verifier != expected {
		return &RUTChecksumError{Expected: expected}
	}
	return nil
}

// rutVerifier computes the expected check character: a weighted sum over the
// digits from least to most significant, weights cycling 2,3,4,5,6,7, then
// 11 - (sum mod 11), where 11 maps to '0' and 10 to 'K'.
func rutVerifier(body string) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight == 8 {
			weight = 2
		}
	}

	switch v := 11 - sum%11; v {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + v)
	}
}
