package services

import (
	"context"
	"errors"
	"strings"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/pkg/validation"
	"saludvital.cl/repositories"

	"go.uber.org/zap"
)

// TreatmentServiceError is a typed service error.
type TreatmentServiceError string

func (e TreatmentServiceError) Error() string { return string(e) }

const (
	ErrTreatmentNotFound TreatmentServiceError = "tratamiento no encontrado"
)

// ITreatmentService manages treatments.
type ITreatmentService interface {
	CreateTreatment(ctx context.Context, treatment *models.Treatment) error
	GetTreatmentByID(ctx context.Context, id uint) (*models.Treatment, error)
	GetTreatmentsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.TreatmentFilter) (*queryparams.PaginatedResult, error)
	UpdateTreatment(ctx context.Context, treatment *models.Treatment) error
	DeleteTreatment(ctx context.Context, id uint) error
}

type TreatmentService struct {
	repo            repositories.ITreatmentRepository
	appointmentRepo repositories.IAppointmentRepository
}

func NewTreatmentService() ITreatmentService {
	return &TreatmentService{
		repo:            repositories.NewTreatmentRepository(),
		appointmentRepo: repositories.NewAppointmentRepository(),
	}
}

// ValidateTreatment checks the field rules. Pure; runs on create and update.
func ValidateTreatment(treatment *models.Treatment) error {
	fieldErrs := validation.FieldErrors{}

	if treatment.AppointmentID == 0 {
		fieldErrs.Add("appointment_id", "la consulta es obligatoria")
	}
	if strings.TrimSpace(treatment.Description) == "" {
		fieldErrs.Add("description", "la descripción del tratamiento es obligatoria")
	}
	if treatment.DurationDays <= 0 {
		fieldErrs.Add("duration_days", "la duración debe ser mayor que cero")
	}

	return fieldErrs.OrNil()
}

func (s *TreatmentService) checkTreatmentReferences(ctx context.Context, treatment *models.Treatment) error {
	if treatment.AppointmentID == 0 {
		return nil
	}
	if _, err := s.appointmentRepo.FindByID(ctx, treatment.AppointmentID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return validation.FieldErrors{"appointment_id": "la consulta indicada no existe"}
	}
	return nil
}

func (s *TreatmentService) CreateTreatment(ctx context.Context, treatment *models.Treatment) error {
	if err := ValidateTreatment(treatment); err != nil {
		return err
	}
	if err := s.checkTreatmentReferences(ctx, treatment); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, treatment); err != nil {
		configslog.Log.Error("CreateTreatment failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Tratamiento creado: ID %d, consulta %d", treatment.ID, treatment.AppointmentID)
	return nil
}

func (s *TreatmentService) GetTreatmentByID(ctx context.Context, id uint) (*models.Treatment, error) {
	treatment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTreatmentNotFound
		}
		return nil, err
	}
	return treatment, nil
}

func (s *TreatmentService) GetTreatmentsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.TreatmentFilter) (*queryparams.PaginatedResult, error) {
	params.Validate()
	treatments, total, err := s.repo.FindAllPaginated(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(treatments, params, total), nil
}

func (s *TreatmentService) UpdateTreatment(ctx context.Context, treatment *models.Treatment) error {
	existing, err := s.GetTreatmentByID(ctx, treatment.ID)
	if err != nil {
		return err
	}
	if err := ValidateTreatment(treatment); err != nil {
		return err
	}
	if err := s.checkTreatmentReferences(ctx, treatment); err != nil {
		return err
	}
	// The start date is stamped on creation and never moves.
	treatment.StartDate = existing.StartDate
	treatment.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, treatment)
}

// DeleteTreatment removes the treatment and, via cascade, its prescriptions.
func (s *TreatmentService) DeleteTreatment(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrTreatmentNotFound
	}
	if err == nil {
		configslog.SLog.Infof("Tratamiento eliminado: ID %d", id)
	}
	return err
}

var _ ITreatmentService = (*TreatmentService)(nil)
