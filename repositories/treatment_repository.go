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

// TreatmentFilter narrows treatment list queries.
type TreatmentFilter struct {
	PatientID     uint
	AppointmentID uint
}

// ITreatmentRepository is the database boundary for treatments.
type ITreatmentRepository interface {
	Create(ctx context.Context, treatment *models.Treatment) error
	FindByID(ctx context.Context, id uint) (*models.Treatment, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter TreatmentFilter) ([]models.Treatment, int64, error)
	Update(ctx context.Context, treatment *models.Treatment) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type TreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository() ITreatmentRepository {
	return &TreatmentRepository{db: configs.GetDB()}
}

func (r *TreatmentRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *TreatmentRepository) Create(ctx context.Context, treatment *models.Treatment) error {
	return r.getDB(ctx).Omit(clause.Associations).Create(treatment).Error
}

func (r *TreatmentRepository) FindByID(ctx context.Context, id uint) (*models.Treatment, error) {
	var treatment models.Treatment
	err := r.getDB(ctx).
		Preload("Appointment").Preload("Appointment.Patient").Preload("Appointment.Physician").
		First(&treatment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TreatmentRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &treatment, nil
}

func (r *TreatmentRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter TreatmentFilter) ([]models.Treatment, int64, error) {
	var treatments []models.Treatment
	var total int64

	query := r.getDB(ctx).Model(&models.Treatment{})
	needsJoin := params.Query != "" || filter.PatientID != 0
	if needsJoin {
		query = query.
			Joins("JOIN appointments ON appointments.id = treatments.appointment_id").
			Joins("JOIN patients ON patients.id = appointments.patient_id")
	}
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where(
			"treatments.description ILIKE ? OR treatments.observations ILIKE ? OR patients.first_name ILIKE ? OR patients.last_name ILIKE ?",
			like, like, like, like)
	}
	if filter.PatientID != 0 {
		query = query.Where("appointments.patient_id = ?", filter.PatientID)
	}
	if filter.AppointmentID != 0 {
		query = query.Where("treatments.appointment_id = ?", filter.AppointmentID)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("TreatmentRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return treatments, 0, nil
	}

	allowed := map[string]string{
		"id":            "treatments.id",
		"start_date":    "treatments.start_date",
		"duration_days": "treatments.duration_days",
		"created_at":    "treatments.created_at",
	}
	order := sortColumn(allowed, params.SortBy, "treatments.start_date")
	if needsJoin {
		query = query.Select("treatments.*")
	}
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Preload("Appointment").Preload("Appointment.Patient").Preload("Appointment.Physician").
		Find(&treatments).Error
	if err != nil {
		configslog.Log.Error("TreatmentRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return treatments, total, nil
}

func (r *TreatmentRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	if treatment == nil || treatment.ID == 0 {
		return errors.New("tratamiento inválido para actualizar")
	}
	return r.getDB(ctx).Omit(clause.Associations).Save(treatment).Error
}

// Delete removes the treatment; prescriptions cascade via the constraint.
func (r *TreatmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Treatment{}, id)
	if result.Error != nil {
		configslog.Log.Error("TreatmentRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TreatmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Treatment{}).Count(&count).Error
	return count, err
}

var _ ITreatmentRepository = (*TreatmentRepository)(nil)
