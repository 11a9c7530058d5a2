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

// MedicationServiceError is a typed service error.
type MedicationServiceError string

func (e MedicationServiceError) Error() string { return string(e) }

const (
	ErrMedicationNotFound MedicationServiceError = "medicamento no encontrado"
)

// IMedicationService manages the medication inventory.
type IMedicationService interface {
	CreateMedication(ctx context.Context, medication *models.Medication) error
	GetMedicationByID(ctx context.Context, id uint) (*models.Medication, error)
	GetAllMedications(ctx context.Context) ([]models.Medication, error)
	GetMedicationsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.MedicationFilter) (*queryparams.PaginatedResult, error)
	UpdateMedication(ctx context.Context, medication *models.Medication) error
	DeleteMedication(ctx context.Context, id uint) error
}

type MedicationService struct {
	repo repositories.IMedicationRepository
}

func NewMedicationService() IMedicationService {
	return &MedicationService{repo: repositories.NewMedicationRepository()}
}

// ValidateMedication checks the field rules. Stock zero is a legal state
// (sold out); a negative stock or a free medication is not.
func ValidateMedication(medication *models.Medication) error {
	fieldErrs := validation.FieldErrors{}

	if strings.TrimSpace(medication.Name) == "" {
		fieldErrs.Add("name", "el nombre del medicamento es obligatorio")
	}
	if strings.TrimSpace(medication.Laboratory) == "" {
		fieldErrs.Add("laboratory", "el laboratorio es obligatorio")
	}
	if medication.Stock < 0 {
		fieldErrs.Add("stock", "el stock no puede ser negativo")
	}
	if medication.UnitPrice <= 0 {
		fieldErrs.Add("unit_price", "el precio unitario debe ser mayor que cero")
	}

	return fieldErrs.OrNil()
}

func (s *MedicationService) CreateMedication(ctx context.Context, medication *models.Medication) error {
	if err := ValidateMedication(medication); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, medication); err != nil {
		configslog.Log.Error("CreateMedication failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Medicamento creado: ID %d, %s", medication.ID, medication.Name)
	return nil
}

func (s *MedicationService) GetMedicationByID(ctx context.Context, id uint) (*models.Medication, error) {
	medication, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	return medication, nil
}

func (s *MedicationService) GetAllMedications(ctx context.Context) ([]models.Medication, error) {
	return s.repo.FindAll(ctx)
}

func (s *MedicationService) GetMedicationsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.MedicationFilter) (*queryparams.PaginatedResult, error) {
	params.Validate()
	medications, total, err := s.repo.FindAllPaginated(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(medications, params, total), nil
}

func (s *MedicationService) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	existing, err := s.GetMedicationByID(ctx, medication.ID)
	if err != nil {
		return err
	}
	if err := ValidateMedication(medication); err != nil {
		return err
	}
	medication.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, medication)
}

// DeleteMedication removes the item and, via cascade, every prescription
// that references it.
func (s *MedicationService) DeleteMedication(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrMedicationNotFound
	}
	if err == nil {
		configslog.SLog.Infof("Medicamento eliminado: ID %d", id)
	}
	return err
}

var _ IMedicationService = (*MedicationService)(nil)
