package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"maria.gonzalez@example.cl",
		"carlos.munoz@saludvital.cl",
		"  admin@saludvital.cl  ",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), "email %q", email)
	}

	invalid := []string{
		"",
		"   ",
		"maria.example.cl",
		"maria@",
		"@example.cl",
		"Ana <ana@example.cl>",
		"ana@example.cl, otra@example.cl",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), "email %q", email)
	}
}
