package repositories

import (
	"context"
	"errors"
	"time"

	"saludvital.cl/configs"
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppointmentFilter narrows appointment list queries.
type AppointmentFilter struct {
	PatientID   uint
	PhysicianID uint
	State       models.AppointmentState
}

// IAppointmentRepository is the database boundary for appointments.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter AppointmentFilter) ([]models.Appointment, int64, error)
	FindRecent(ctx context.Context, limit int) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountToday(ctx context.Context) (int64, error)
}

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configs.GetDB()}
}

func (r *AppointmentRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.getDB(ctx).Omit(clause.Associations).Create(appointment).Error
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.getDB(ctx).
		Preload("Patient").Preload("Physician").Preload("Physician.Specialty").
		First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter AppointmentFilter) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var total int64

	query := r.getDB(ctx).Model(&models.Appointment{})
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.PhysicianID != 0 {
		query = query.Where("physician_id = ?", filter.PhysicianID)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("reason ILIKE ? OR diagnosis ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("AppointmentRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return appointments, 0, nil
	}

	allowed := map[string]string{
		"id":           "id",
		"scheduled_at": "scheduled_at",
		"state":        "state",
		"created_at":   "created_at",
	}
	order := sortColumn(allowed, params.SortBy, "scheduled_at")
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Preload("Patient").Preload("Physician").Preload("Physician.Specialty").
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return appointments, total, nil
}

// FindRecent returns the most recent appointments for the dashboard.
func (r *AppointmentRepository) FindRecent(ctx context.Context, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.getDB(ctx).
		Preload("Patient").Preload("Physician").
		Order("scheduled_at desc").Limit(limit).
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("consulta inválida para actualizar")
	}
	return r.getDB(ctx).Omit(clause.Associations).Save(appointment).Error
}

// Delete removes the appointment; treatments and their prescriptions
// cascade via the constraints.
func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Appointment{}, id)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

// CountToday counts appointments scheduled within the current UTC day.
func (r *AppointmentRepository) CountToday(ctx context.Context) (int64, error) {
	var count int64
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	err := r.getDB(ctx).Model(&models.Appointment{}).
		Where("scheduled_at >= ? AND scheduled_at < ?", dayStart, dayStart.Add(24*time.Hour)).
		Count(&count).Error
	return count, err
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
