package services

import (
	"context"
	"testing"

	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/pkg/validation"
	"saludvital.cl/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrescriptionRepo struct {
	pairTaken bool
	created   *models.Prescription
}

func (r *stubPrescriptionRepo) Create(_ context.Context, p *models.Prescription) error {
	r.created = p
	return nil
}

func (r *stubPrescriptionRepo) FindByID(context.Context, uint) (*models.Prescription, error) {
	return nil, repositories.ErrNotFound
}

func (r *stubPrescriptionRepo) FindAllPaginated(context.Context, queryparams.ListParams, repositories.PrescriptionFilter) ([]models.Prescription, int64, error) {
	return nil, 0, nil
}

func (r *stubPrescriptionRepo) Update(context.Context, *models.Prescription) error { return nil }
func (r *stubPrescriptionRepo) Delete(context.Context, uint) error                 { return nil }
func (r *stubPrescriptionRepo) Count(context.Context) (int64, error)               { return 0, nil }

func (r *stubPrescriptionRepo) ExistsPair(context.Context, uint, uint, uint) (bool, error) {
	return r.pairTaken, nil
}

type stubTreatmentRepo struct{}

func (stubTreatmentRepo) Create(context.Context, *models.Treatment) error { return nil }

func (stubTreatmentRepo) FindByID(_ context.Context, id uint) (*models.Treatment, error) {
	return &models.Treatment{BaseModel: models.BaseModel{ID: id}}, nil
}

func (stubTreatmentRepo) FindAllPaginated(context.Context, queryparams.ListParams, repositories.TreatmentFilter) ([]models.Treatment, int64, error) {
	return nil, 0, nil
}

func (stubTreatmentRepo) Update(context.Context, *models.Treatment) error { return nil }
func (stubTreatmentRepo) Delete(context.Context, uint) error              { return nil }
func (stubTreatmentRepo) Count(context.Context) (int64, error)            { return 0, nil }

type stubMedicationRepo struct{}

func (stubMedicationRepo) Create(context.Context, *models.Medication) error { return nil }

func (stubMedicationRepo) FindByID(_ context.Context, id uint) (*models.Medication, error) {
	return &models.Medication{BaseModel: models.BaseModel{ID: id}}, nil
}

func (stubMedicationRepo) FindAll(context.Context) ([]models.Medication, error) { return nil, nil }

func (stubMedicationRepo) FindAllPaginated(context.Context, queryparams.ListParams, repositories.MedicationFilter) ([]models.Medication, int64, error) {
	return nil, 0, nil
}

func (stubMedicationRepo) Update(context.Context, *models.Medication) error { return nil }
func (stubMedicationRepo) Delete(context.Context, uint) error               { return nil }
func (stubMedicationRepo) CountLowStock(context.Context) (int64, error)     { return 0, nil }

func stubbedPrescriptionService(repo *stubPrescriptionRepo) *PrescriptionService {
	return &PrescriptionService{
		repo:           repo,
		treatmentRepo:  stubTreatmentRepo{},
		medicationRepo: stubMedicationRepo{},
	}
}

func validPrescription() *models.Prescription {
	return &models.Prescription{
		TreatmentID:  1,
		MedicationID: 2,
		Dose:         "500 mg",
		Frequency:    "cada 8 horas",
		Duration:     "7 días",
	}
}

func TestValidatePrescription_OK(t *testing.T) {
	assert.NoError(t, ValidatePrescription(validPrescription()))
}

func TestValidatePrescription_TrimsDosageText(t *testing.T) {
	prescription := validPrescription()
	prescription.Dose = "  500 mg  "

	require.NoError(t, ValidatePrescription(prescription))
	assert.Equal(t, "500 mg", prescription.Dose)
}

func TestValidatePrescription_BlankDose(t *testing.T) {
	prescription := validPrescription()
	prescription.Dose = "   "

	err := ValidatePrescription(prescription)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "dose")
}

func TestValidatePrescription_MissingEverything(t *testing.T) {
	err := ValidatePrescription(&models.Prescription{})
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	for _, field := range []string{"treatment_id", "medication_id", "dose", "frequency", "duration"} {
		assert.Contains(t, fieldErrs, field)
	}
}

func TestCreatePrescription_DuplicatePairRejected(t *testing.T) {
	repo := &stubPrescriptionRepo{pairTaken: true}
	service := stubbedPrescriptionService(repo)

	err := service.CreatePrescription(context.Background(), validPrescription())
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "medication_id")
	assert.Nil(t, repo.created, "a duplicate pair must not reach the repository")
}

func TestCreatePrescription_FreePairAccepted(t *testing.T) {
	repo := &stubPrescriptionRepo{}
	service := stubbedPrescriptionService(repo)

	require.NoError(t, service.CreatePrescription(context.Background(), validPrescription()))
	assert.NotNil(t, repo.created)
}

func TestValidateHistoryEvent_SeverityDefaultsToMild(t *testing.T) {
	event := &models.MedicalHistoryEvent{
		PatientID:   1,
		EventType:   models.EventConsultation,
		Description: "Control de rutina",
	}
	require.NoError(t, ValidateHistoryEvent(event))
	assert.Equal(t, models.SeverityMild, event.Severity)
}

func TestValidateHistoryEvent_UnknownCodes(t *testing.T) {
	event := &models.MedicalHistoryEvent{
		PatientID:   1,
		EventType:   "CIRUGIA",
		Description: "x",
		Severity:    "FATAL",
	}
	err := ValidateHistoryEvent(event)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "event_type")
	assert.Contains(t, fieldErrs, "severity")
}

func TestValidateSpecialty_BlankName(t *testing.T) {
	err := ValidateSpecialty(&models.Specialty{Name: "  "})
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "name")
}
