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

// PrescriptionServiceError is a typed service error.
type PrescriptionServiceError string

func (e PrescriptionServiceError) Error() string { return string(e) }

const (
	ErrPrescriptionNotFound PrescriptionServiceError = "receta no encontrada"
)

// IPrescriptionService manages prescriptions.
type IPrescriptionService interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) error
	GetPrescriptionByID(ctx context.Context, id uint) (*models.Prescription, error)
	GetPrescriptionsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.PrescriptionFilter) (*queryparams.PaginatedResult, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
	DeletePrescription(ctx context.Context, id uint) error
}

type PrescriptionService struct {
	repo           repositories.IPrescriptionRepository
	treatmentRepo  repositories.ITreatmentRepository
	medicationRepo repositories.IMedicationRepository
}

func NewPrescriptionService() IPrescriptionService {
	return &PrescriptionService{
		repo:           repositories.NewPrescriptionRepository(),
		treatmentRepo:  repositories.NewTreatmentRepository(),
		medicationRepo: repositories.NewMedicationRepository(),
	}
}

// ValidatePrescription checks the field rules and trims the dosage text in
// place, so "  " is rejected the same as "". Pure; runs on create and update.
func ValidatePrescription(prescription *models.Prescription) error {
	fieldErrs := validation.FieldErrors{}

	if prescription.TreatmentID == 0 {
		fieldErrs.Add("treatment_id", "el tratamiento es obligatorio")
	}
	if prescription.MedicationID == 0 {
		fieldErrs.Add("medication_id", "el medicamento es obligatorio")
	}
	prescription.Dose = strings.TrimSpace(prescription.Dose)
	if prescription.Dose == "" {
		fieldErrs.Add("dose", "la dosis es obligatoria")
	}
	prescription.Frequency = strings.TrimSpace(prescription.Frequency)
	if prescription.Frequency == "" {
		fieldErrs.Add("frequency", "la frecuencia es obligatoria")
	}
	prescription.Duration = strings.TrimSpace(prescription.Duration)
	if prescription.Duration == "" {
		fieldErrs.Add("duration", "la duración es obligatoria")
	}

	return fieldErrs.OrNil()
}

// checkPrescriptionReferences verifies both sides exist and that the
// (treatment, medication) pair is not already prescribed.
func (s *PrescriptionService) checkPrescriptionReferences(ctx context.Context, prescription *models.Prescription) error {
	fieldErrs := validation.FieldErrors{}
	if prescription.TreatmentID != 0 {
		if _, err := s.treatmentRepo.FindByID(ctx, prescription.TreatmentID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			fieldErrs.Add("treatment_id", "el tratamiento indicado no existe")
		}
	}
	if prescription.MedicationID != 0 {
		if _, err := s.medicationRepo.FindByID(ctx, prescription.MedicationID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			fieldErrs.Add("medication_id", "el medicamento indicado no existe")
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	taken, err := s.repo.ExistsPair(ctx, prescription.TreatmentID, prescription.MedicationID, prescription.ID)
	if err != nil {
		return err
	}
	if taken {
		fieldErrs.Add("medication_id", "el medicamento ya está recetado en este tratamiento")
	}
	return fieldErrs.OrNil()
}

func (s *PrescriptionService) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	if err := ValidatePrescription(prescription); err != nil {
		return err
	}
	if err := s.checkPrescriptionReferences(ctx, prescription); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, prescription); err != nil {
		configslog.Log.Error("CreatePrescription failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Receta creada: ID %d, tratamiento %d, medicamento %d", prescription.ID, prescription.TreatmentID, prescription.MedicationID)
	return nil
}

func (s *PrescriptionService) GetPrescriptionByID(ctx context.Context, id uint) (*models.Prescription, error) {
	prescription, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, err
	}
	return prescription, nil
}

func (s *PrescriptionService) GetPrescriptionsPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.PrescriptionFilter) (*queryparams.PaginatedResult, error) {
	params.Validate()
	prescriptions, total, err := s.repo.FindAllPaginated(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(prescriptions, params, total), nil
}

func (s *PrescriptionService) UpdatePrescription(ctx context.Context, prescription *models.Prescription) error {
	existing, err := s.GetPrescriptionByID(ctx, prescription.ID)
	if err != nil {
		return err
	}
	if err := ValidatePrescription(prescription); err != nil {
		return err
	}
	if err := s.checkPrescriptionReferences(ctx, prescription); err != nil {
		return err
	}
	prescription.PrescribedAt = existing.PrescribedAt
	prescription.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, prescription)
}

func (s *PrescriptionService) DeletePrescription(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrPrescriptionNotFound
	}
	if err == nil {
		configslog.SLog.Infof("Receta eliminada: ID %d", id)
	}
	return err
}

var _ IPrescriptionService = (*PrescriptionService)(nil)
