package services

import (
	"testing"
	"time"

	"saludvital.cl/models"
	"saludvital.cl/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppointment() *models.Appointment {
	return &models.Appointment{
		PatientID:   1,
		PhysicianID: 2,
		ScheduledAt: time.Now().UTC().Add(-2 * time.Hour),
		Reason:      "Dolor abdominal persistente",
		State:       models.StateScheduled,
	}
}

func TestValidateAppointment_OK(t *testing.T) {
	assert.NoError(t, ValidateAppointment(validAppointment()))
}

func TestValidateAppointment_FutureDate(t *testing.T) {
	appointment := validAppointment()
	appointment.ScheduledAt = time.Now().UTC().Add(48 * time.Hour)

	err := ValidateAppointment(appointment)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "scheduled_at")
}

func TestValidateAppointment_EarlierTodayIsAllowed(t *testing.T) {
	appointment := validAppointment()
	appointment.ScheduledAt = time.Now().Add(-time.Minute)
	assert.NoError(t, ValidateAppointment(appointment))
}

func TestValidateAppointment_LaterTodayRejected(t *testing.T) {
	appointment := validAppointment()
	appointment.ScheduledAt = time.Now().Add(30 * time.Minute)

	err := ValidateAppointment(appointment)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "scheduled_at")
}

func TestValidateAppointment_UnknownState(t *testing.T) {
	appointment := validAppointment()
	appointment.State = "PEND"

	err := ValidateAppointment(appointment)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "state")
}

func TestValidateAppointment_EveryKnownState(t *testing.T) {
	for _, state := range models.AppointmentStates() {
		appointment := validAppointment()
		appointment.State = state
		assert.NoError(t, ValidateAppointment(appointment), "state %s", state)
	}
}

func TestValidateAppointment_MissingFields(t *testing.T) {
	err := ValidateAppointment(&models.Appointment{})
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	for _, field := range []string{"patient_id", "physician_id", "scheduled_at", "reason", "state"} {
		assert.Contains(t, fieldErrs, field)
	}
}

func TestValidateTreatment_Duration(t *testing.T) {
	treatment := &models.Treatment{
		AppointmentID: 1,
		Description:   "Reposo y antiinflamatorios",
		DurationDays:  7,
	}
	require.NoError(t, ValidateTreatment(treatment))

	treatment.DurationDays = 0
	err := ValidateTreatment(treatment)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "duration_days")

	treatment.DurationDays = -3
	err = ValidateTreatment(treatment)
	require.Error(t, err)
}

func TestValidateTreatment_MissingDescription(t *testing.T) {
	treatment := &models.Treatment{AppointmentID: 1, Description: "   ", DurationDays: 5}

	err := ValidateTreatment(treatment)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "description")
}
