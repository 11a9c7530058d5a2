package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhoneLocalMobile(t *testing.T) {
	got, err := NormalizePhone("912345678")
	require.NoError(t, err)
	assert.Equal(t, "+56 9 1234 5678", got)
}

func TestNormalizePhoneWithCountryPrefix(t *testing.T) {
	got, err := NormalizePhone("56912345678")
	require.NoError(t, err)
	assert.Equal(t, "+56 9 1234 5678", got)
}

func TestNormalizePhoneStripsFormatting(t *testing.T) {
	got, err := NormalizePhone("+56 9 1234 5678")
	require.NoError(t, err)
	assert.Equal(t, "+56 9 1234 5678", got)

	got, err = NormalizePhone("9-1234-5678")
	require.NoError(t, err)
	assert.Equal(t, "+56 9 1234 5678", got)
}

func TestNormalizePhoneTwelveDigitPassthrough(t *testing.T) {
	// Twelve digits with the 569 prefix are considered already stored in
	// full international form and returned untouched.
	got, err := NormalizePhone("569123456789")
	require.NoError(t, err)
	assert.Equal(t, "569123456789", got)
}

func TestNormalizePhoneRejectsOtherShapes(t *testing.T) {
	for _, phone := range []string{"123", "812345678", "5691234567", "", "9123456a8"} {
		_, err := NormalizePhone(phone)
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q", phone)
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once, err := NormalizePhone("912345678")
	require.NoError(t, err)
	twice, err := NormalizePhone(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
