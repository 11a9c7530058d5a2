package services

import (
	"testing"

	"saludvital.cl/models"
	"saludvital.cl/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPhysician() *models.Physician {
	return &models.Physician{
		RUT:         "20.347.878-K",
		FirstName:   "Carlos",
		LastName:    "Muñoz",
		Email:       "carlos.munoz@saludvital.cl",
		Phone:       "+56 9 8765 4321",
		SpecialtyID: 3,
		Active:      true,
	}
}

func TestValidatePhysician_OK(t *testing.T) {
	physician := validPhysician()
	require.NoError(t, ValidatePhysician(physician))
	assert.Equal(t, "+56 9 8765 4321", physician.Phone)
}

func TestValidatePhysician_MissingSpecialty(t *testing.T) {
	physician := validPhysician()
	physician.SpecialtyID = 0

	err := ValidatePhysician(physician)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "specialty_id")
}

func TestValidatePhysician_LowercaseVerifierAccepted(t *testing.T) {
	physician := validPhysician()
	physician.RUT = "20.347.878-k"
	assert.NoError(t, ValidatePhysician(physician))
}

func TestValidatePhysician_BadPhone(t *testing.T) {
	physician := validPhysician()
	physician.Phone = "12345"

	err := ValidatePhysician(physician)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "phone")
}
