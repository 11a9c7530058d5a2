package services

import (
	"testing"
	"time"

	"saludvital.cl/models"
	"saludvital.cl/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatient() *models.Patient {
	return &models.Patient{
		RUT:       "12.345.678-5",
		FirstName: "María",
		LastName:  "González",
		BirthDate: time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
		BloodType: models.BloodOPositive,
		Email:     "maria.gonzalez@example.cl",
		Phone:     "912345678",
		Address:   "Av. Providencia 1234, Santiago",
	}
}

func TestValidatePatient_OK(t *testing.T) {
	patient := validPatient()
	require.NoError(t, ValidatePatient(patient))
	assert.Equal(t, "+56 9 1234 5678", patient.Phone, "phone must be normalized in place")
}

func TestValidatePatient_BirthDateToday(t *testing.T) {
	patient := validPatient()
	patient.BirthDate = time.Now().UTC()
	assert.NoError(t, ValidatePatient(patient), "a birth date of today is allowed")
}

func TestValidatePatient_BirthDateTomorrow(t *testing.T) {
	patient := validPatient()
	patient.BirthDate = time.Now().UTC().Add(24 * time.Hour)

	err := ValidatePatient(patient)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "birth_date")
}

func TestValidatePatient_BadRUTChecksum(t *testing.T) {
	patient := validPatient()
	patient.RUT = "12.345.678-9"

	err := ValidatePatient(patient)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "rut")
}

func TestValidatePatient_CollectsAllFieldErrors(t *testing.T) {
	patient := &models.Patient{}

	err := ValidatePatient(patient)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	for _, field := range []string{"rut", "first_name", "last_name", "birth_date", "blood_type", "email", "phone", "address"} {
		assert.Contains(t, fieldErrs, field)
	}
}

func TestValidatePatient_InvalidBloodType(t *testing.T) {
	patient := validPatient()
	patient.BloodType = "Z+"

	err := ValidatePatient(patient)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "blood_type")
	assert.NotContains(t, fieldErrs, "rut")
}

func TestValidatePatient_EmailWithoutAt(t *testing.T) {
	patient := validPatient()
	patient.Email = "maria.example.cl"

	err := ValidatePatient(patient)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "email")
}
