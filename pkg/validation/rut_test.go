package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRUTAcceptsValidNumbers(t *testing.T) {
	valid := []string{
		"12.345.678-5",
		"12345678-5",
		"123456785",
		"11.111.111-1",
		"7.000.000-8",
	}

	for _, rut := range valid {
		assert.NoError(t, ValidateRUT(rut), "rut %q", rut)
	}
}

func TestValidateRUTVerifierK(t *testing.T) {
	// 20.347.878: 8*2+7*3+8*4+7*5+4*6+3*7+0*2+2*3 = 155, 155%11=1, 11-1=10 -> K.
	require.NoError(t, ValidateRUT("20.347.878-K"))
	require.NoError(t, ValidateRUT("20347878k"), "verifier is case-insensitive")
}

func TestValidateRUTChecksumMismatch(t *testing.T) {
	err := ValidateRUT("12.345.678-9")
	require.Error(t, err)

	var checksum *RUTChecksumError
	require.True(t, errors.As(err, &checksum), "mismatch must be a checksum error, not a length error")
	assert.Equal(t, byte('5'), checksum.Expected)
}

func TestValidateRUTTooShort(t *testing.T) {
	for _, rut := range []string{"", "123", "1.234-5"} {
		err := ValidateRUT(rut)
		assert.ErrorIs(t, err, ErrRUTTooShort, "rut %q", rut)
	}
}

func TestValidateRUTStructuralErrors(t *testing.T) {
	assert.ErrorIs(t, ValidateRUT("12A45678-5"), ErrRUTInvalidBody)
	assert.ErrorIs(t, ValidateRUT("12345678-X"), ErrRUTInvalidVerifier)
}

func TestRUTVerifierDeterministic(t *testing.T) {
	// Reapplying the algorithm over the same body always yields the same
	// check character.
	for _, body := range []string{"12345678", "1", "99999999", "20347878"} {
		first := rutVerifier(body)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, rutVerifier(body))
		}
	}
}
