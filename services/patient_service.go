package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/pkg/validation"
	"saludvital.cl/repositories"

	"go.uber.org/zap"
)

// PatientServiceError is a typed service error.
type PatientServiceError string

func (e PatientServiceError) Error() string { return string(e) }

const (
	ErrPatientNotFound PatientServiceError = "paciente no encontrado"
)

// IPatientService manages patients.
type IPatientService interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	GetPatientByID(ctx context.Context, id uint) (*models.Patient, error)
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
	GetPatientsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.PatientFilter) (*queryparams.PaginatedResult, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatient(ctx context.Context, id uint) error
}

type PatientService struct {
	repo repositories.IPatientRepository
}

func NewPatientService() IPatientService {
	return &PatientService{repo: repositories.NewPatientRepository()}
}

// dateAfterToday compares at day granularity in UTC, so a birth date equal
// to today is accepted while tomorrow is not.
func dateAfterToday(t time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}

// ValidatePatient checks all field rules and normalizes the phone in place.
// Pure apart from the clock; runs on every create and update so a later
// update cannot reintroduce an invalid state.
func ValidatePatient(patient *models.Patient) error {
	fieldErrs := validation.FieldErrors{}

	fieldErrs.AddErr("rut", validation.ValidateRUT(patient.RUT))
	if strings.TrimSpace(patient.FirstName) == "" {
		fieldErrs.Add("first_name", "el nombre es obligatorio")
	}
	if strings.TrimSpace(patient.LastName) == "" {
		fieldErrs.Add("last_name", "el apellido es obligatorio")
	}
	if patient.BirthDate.IsZero() {
		fieldErrs.Add("birth_date", "la fecha de nacimiento es obligatoria")
	} else if dateAfterToday(patient.BirthDate) {
		fieldErrs.Add("birth_date", "la fecha de nacimiento no puede ser futura")
	}
	if !patient.BloodType.Valid() {
		fieldErrs.Add("blood_type", "tipo de sangre inválido")
	}
	if !validation.ValidEmail(patient.Email) {
		fieldErrs.Add("email", "correo electrónico inválido")
	}
	if normalized, err := validation.NormalizePhone(patient.Phone); err != nil {
		fieldErrs.AddErr("phone", err)
	} else {
		patient.Phone = normalized
	}
	if strings.TrimSpace(patient.Address) == "" {
		fieldErrs.Add("address", "la dirección es obligatoria")
	}

	return fieldErrs.OrNil()
}

// checkPatientUniqueness adds field errors for duplicate RUT or email.
func (s *PatientService) checkPatientUniqueness(ctx context.Context, patient *models.Patient) error {
	fieldErrs := validation.FieldErrors{}
	if taken, err := s.repo.ExistsByRUT(ctx, patient.RUT, patient.ID); err != nil {
		return err
	} else if taken {
		fieldErrs.Add("rut", "este RUT ya está registrado")
	}
	if taken, err := s.repo.ExistsByEmail(ctx, patient.Email, patient.ID); err != nil {
		return err
	} else if taken {
		fieldErrs.Add("email", "este correo electrónico ya está registrado")
	}
	return fieldErrs.OrNil()
}

func (s *PatientService) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := ValidatePatient(patient); err != nil {
		return err
	}
	if err := s.checkPatientUniqueness(ctx, patient); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		configslog.Log.Error("CreatePatient failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Paciente creado: ID %d, %s", patient.ID, patient.FullName())
	return nil
}

func (s *PatientService) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return s.repo.FindAll(ctx)
}

func (s *PatientService) GetPatientsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.PatientFilter) (*queryparams.PaginatedResult, error) {
	params.Validate()
	patients, total, err := s.repo.FindAllPaginated(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(patients, params, total), nil
}

// UpdatePatient replaces the mutable fields after re-running every check.
func (s *PatientService) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	existing, err := s.GetPatientByID(ctx, patient.ID)
	if err != nil {
		return err
	}
	if err := ValidatePatient(patient); err != nil {
		return err
	}
	if err := s.checkPatientUniqueness(ctx, patient); err != nil {
		return err
	}
	// Registration time is immutable.
	patient.RegisteredAt = existing.RegisteredAt
	patient.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, patient)
}

// DeletePatient removes the patient and, via cascade, their appointments,
// treatments, prescriptions and history events.
func (s *PatientService) DeletePatient(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrPatientNotFound
	}
	if err == nil {
		configslog.SLog.Infof("Paciente eliminado: ID %d", id)
	}
	return err
}

var _ IPatientService = (*PatientService)(nil)
