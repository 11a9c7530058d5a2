package repositories

import (
	"context"
	"errors"

	"saludvital.cl/configs"
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PrescriptionFilter narrows prescription list queries.
type PrescriptionFilter struct {
	PatientID    uint
	MedicationID uint
	TreatmentID  uint
}

// IPrescriptionRepository is the database boundary for prescriptions.
type IPrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) error
	FindByID(ctx context.Context, id uint) (*models.Prescription, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter PrescriptionFilter) ([]models.Prescription, int64, error)
	Update(ctx context.Context, prescription *models.Prescription) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	ExistsPair(ctx context.Context, treatmentID, medicationID, excludeID uint) (bool, error)
}

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository() IPrescriptionRepository {
	return &PrescriptionRepository{db: configs.GetDB()}
}

func (r *PrescriptionRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	return r.getDB(ctx).Omit(clause.Associations).Create(prescription).Error
}

func (r *PrescriptionRepository) FindByID(ctx context.Context, id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.getDB(ctx).
		Preload("Treatment").Preload("Treatment.Appointment").
		Preload("Treatment.Appointment.Patient").Preload("Medication").
		First(&prescription, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PrescriptionRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter PrescriptionFilter) ([]models.Prescription, int64, error) {
	var prescriptions []models.Prescription
	var total int64

	query := r.getDB(ctx).Model(&models.Prescription{})
	needsJoin := params.Query != "" || filter.PatientID != 0
	if needsJoin {
		query = query.
			Joins("JOIN treatments ON treatments.id = prescriptions.treatment_id").
			Joins("JOIN appointments ON appointments.id = treatments.appointment_id").
			Joins("JOIN patients ON patients.id = appointments.patient_id").
			Joins("JOIN medications ON medications.id = prescriptions.medication_id")
	}
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where(
			"medications.name ILIKE ? OR patients.first_name ILIKE ? OR patients.last_name ILIKE ? OR prescriptions.dose ILIKE ?",
			like, like, like, like)
	}
	if filter.PatientID != 0 {
		query = query.Where("appointments.patient_id = ?", filter.PatientID)
	}
	if filter.MedicationID != 0 {
		query = query.Where("prescriptions.medication_id = ?", filter.MedicationID)
	}
	if filter.TreatmentID != 0 {
		query = query.Where("prescriptions.treatment_id = ?", filter.TreatmentID)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("PrescriptionRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return prescriptions, 0, nil
	}

	allowed := map[string]string{
		"id":            "prescriptions.id",
		"prescribed_at": "prescriptions.prescribed_at",
		"created_at":    "prescriptions.created_at",
	}
	order := sortColumn(allowed, params.SortBy, "prescriptions.prescribed_at")
	if needsJoin {
		query = query.Select("prescriptions.*")
	}
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Preload("Treatment").Preload("Treatment.Appointment").
		Preload("Treatment.Appointment.Patient").Preload("Medication").
		Find(&prescriptions).Error
	if err != nil {
		configslog.Log.Error("PrescriptionRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return prescriptions, total, nil
}

func (r *PrescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	if prescription == nil || prescription.ID == 0 {
		return errors.New("receta inválida para actualizar")
	}
	return r.getDB(ctx).Omit(clause.Associations).Save(prescription).Error
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Prescription{}, id)
	if result.Error != nil {
		configslog.Log.Error("PrescriptionRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PrescriptionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Prescription{}).Count(&count).Error
	return count, err
}

// ExistsPair reports whether a prescription already joins the treatment and
// medication. The unique index backs this up under concurrency.
func (r *PrescriptionRepository) ExistsPair(ctx context.Context, treatmentID, medicationID, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Prescription{}).
		Where("treatment_id = ? AND medication_id = ?", treatmentID, medicationID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

var _ IPrescriptionRepository = (*PrescriptionRepository)(nil)
