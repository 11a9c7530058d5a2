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

// AppointmentServiceError is a typed service error.
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound AppointmentServiceError = "consulta no encontrada"
)

// IAppointmentService manages appointments.
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	GetAppointmentsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.AppointmentFilter) (*queryparams.PaginatedResult, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint) error
}

type AppointmentService struct {
	repo          repositories.IAppointmentRepository
	patientRepo   repositories.IPatientRepository
	physicianRepo repositories.IPhysicianRepository
}

func NewAppointmentService() IAppointmentService {
	return &AppointmentService{
		repo:          repositories.NewAppointmentRepository(),
		patientRepo:   repositories.NewPatientRepository(),
		physicianRepo: repositories.NewPhysicianRepository(),
	}
}

// ValidateAppointment checks the field rules. Pure apart from the clock;
// appointments record visits that happened, so the scheduled instant may
// not lie past the current time, even within the same day.
func ValidateAppointment(appointment *models.Appointment) error {
	fieldErrs := validation.FieldErrors{}

	if appointment.PatientID == 0 {
		fieldErrs.Add("patient_id", "el paciente es obligatorio")
	}
	if appointment.PhysicianID == 0 {
		fieldErrs.Add("physician_id", "el médico es obligatorio")
	}
	if appointment.ScheduledAt.IsZero() {
		fieldErrs.Add("scheduled_at", "la fecha de la consulta es obligatoria")
	} else if appointment.ScheduledAt.After(time.Now()) {
		fieldErrs.Add("scheduled_at", "la fecha de la consulta no puede ser futura")
	}
	if strings.TrimSpace(appointment.Reason) == "" {
		fieldErrs.Add("reason", "el motivo de la consulta es obligatorio")
	}
	if !appointment.State.Valid() {
		fieldErrs.Add("state", "estado de consulta inválido")
	}

	return fieldErrs.OrNil()
}

// checkAppointmentReferences verifies the patient and physician exist.
func (s *AppointmentService) checkAppointmentReferences(ctx context.Context, appointment *models.Appointment) error {
	fieldErrs := validation.FieldErrors{}
	if appointment.PatientID != 0 {
		if _, err := s.patientRepo.FindByID(ctx, appointment.PatientID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			fieldErrs.Add("patient_id", "el paciente indicado no existe")
		}
	}
	if appointment.PhysicianID != 0 {
		if _, err := s.physicianRepo.FindByID(ctx, appointment.PhysicianID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			fieldErrs.Add("physician_id", "el médico indicado no existe")
		}
	}
	return fieldErrs.OrNil()
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	if err := ValidateAppointment(appointment); err != nil {
		return err
	}
	if err := s.checkAppointmentReferences(ctx, appointment); err != nil {
		return err
	}
	if appointment.State == "" {
		appointment.State = models.StateScheduled
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		configslog.Log.Error("CreateAppointment failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Consulta creada: ID %d, paciente %d, médico %d", appointment.ID, appointment.PatientID, appointment.PhysicianID)
	return nil
}

func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) GetAppointmentsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.AppointmentFilter) (*queryparams.PaginatedResult, error) {
	params.Validate()
	appointments, total, err := s.repo.FindAllPaginated(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(appointments, params, total), nil
}

func (s *AppointmentService) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	existing, err := s.GetAppointmentByID(ctx, appointment.ID)
	if err != nil {
		return err
	}
	if err := ValidateAppointment(appointment); err != nil {
		return err
	}
	if err := s.checkAppointmentReferences(ctx, appointment); err != nil {
		return err
	}
	appointment.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, appointment)
}

// DeleteAppointment removes the appointment; its treatments and their
// prescriptions go with it.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrAppointmentNotFound
	}
	if err == nil {
		configslog.SLog.Infof("Consulta eliminada: ID %d", id)
	}
	return err
}

var _ IAppointmentService = (*AppointmentService)(nil)
