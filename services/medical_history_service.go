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

// MedicalHistoryServiceError is a typed service error.
type MedicalHistoryServiceError string

func (e MedicalHistoryServiceError) Error() string { return string(e) }

const (
	ErrHistoryEventNotFound MedicalHistoryServiceError = "evento de historial no encontrado"
)

// IMedicalHistoryService manages patient history events.
type IMedicalHistoryService interface {
	CreateEvent(ctx context.Context, event *models.MedicalHistoryEvent) error
	GetEventByID(ctx context.Context, id uint) (*models.MedicalHistoryEvent, error)
	GetEventsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.MedicalHistoryFilter) (*queryparams.PaginatedResult, error)
	UpdateEvent(ctx context.Context, event *models.MedicalHistoryEvent) error
	DeleteEvent(ctx context.Context, id uint) error
}

type MedicalHistoryService struct {
	repo          repositories.IMedicalHistoryRepository
	patientRepo   repositories.IPatientRepository
	physicianRepo repositories.IPhysicianRepository
}

func NewMedicalHistoryService() IMedicalHistoryService {
	return &MedicalHistoryService{
		repo:          repositories.NewMedicalHistoryRepository(),
		patientRepo:   repositories.NewPatientRepository(),
		physicianRepo: repositories.NewPhysicianRepository(),
	}
}

// ValidateHistoryEvent checks the field rules. The physician is optional;
// severity defaults to the mildest grade when blank.
func ValidateHistoryEvent(event *models.MedicalHistoryEvent) error {
	fieldErrs := validation.FieldErrors{}

	if event.PatientID == 0 {
		fieldErrs.Add("patient_id", "el paciente es obligatorio")
	}
	if !event.EventType.Valid() {
		fieldErrs.Add("event_type", "tipo de evento inválido")
	}
	if strings.TrimSpace(event.Description) == "" {
		fieldErrs.Add("description", "la descripción del evento es obligatoria")
	}
	if event.Severity == "" {
		event.Severity = models.SeverityMild
	} else if !event.Severity.Valid() {
		fieldErrs.Add("severity", "gravedad inválida")
	}

	return fieldErrs.OrNil()
}

func (s *MedicalHistoryService) checkEventReferences(ctx context.Context, event *models.MedicalHistoryEvent) error {
	fieldErrs := validation.FieldErrors{}
	if event.PatientID != 0 {
		if _, err := s.patientRepo.FindByID(ctx, event.PatientID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			fieldErrs.Add("patient_id", "el paciente indicado no existe")
		}
	}
	if event.PhysicianID != nil && *event.PhysicianID != 0 {
		if _, err := s.physicianRepo.FindByID(ctx, *event.PhysicianID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			fieldErrs.Add("physician_id", "el médico indicado no existe")
		}
	}
	return fieldErrs.OrNil()
}

func (s *MedicalHistoryService) CreateEvent(ctx context.Context, event *models.MedicalHistoryEvent) error {
	if err := ValidateHistoryEvent(event); err != nil {
		return err
	}
	if err := s.checkEventReferences(ctx, event); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		configslog.Log.Error("CreateEvent failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Evento de historial creado: ID %d, paciente %d, tipo %s", event.ID, event.PatientID, event.EventType)
	return nil
}

func (s *MedicalHistoryService) GetEventByID(ctx context.Context, id uint) (*models.MedicalHistoryEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrHistoryEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *MedicalHistoryService) GetEventsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.MedicalHistoryFilter) (*queryparams.PaginatedResult, error) {
	params.Validate()
	events, total, err := s.repo.FindAllPaginated(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(events, params, total), nil
}

func (s *MedicalHistoryService) UpdateEvent(ctx context.Context, event *models.MedicalHistoryEvent) error {
	existing, err := s.GetEventByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if err := ValidateHistoryEvent(event); err != nil {
		return err
	}
	if err := s.checkEventReferences(ctx, event); err != nil {
		return err
	}
	event.EventAt = existing.EventAt
	event.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, event)
}

func (s *MedicalHistoryService) DeleteEvent(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrHistoryEventNotFound
	}
	if err == nil {
		configslog.SLog.Infof("Evento de historial eliminado: ID %d", id)
	}
	return err
}

var _ IMedicalHistoryService = (*MedicalHistoryService)(nil)
