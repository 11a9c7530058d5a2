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

// MedicalHistoryFilter narrows history list queries.
type MedicalHistoryFilter struct {
	PatientID   uint
	PhysicianID uint
	EventType   models.EventType
	Severity    models.Severity
}

// IMedicalHistoryRepository is the database boundary for history events.
type IMedicalHistoryRepository interface {
	Create(ctx context.Context, event *models.MedicalHistoryEvent) error
	FindByID(ctx context.Context, id uint) (*models.MedicalHistoryEvent, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter MedicalHistoryFilter) ([]models.MedicalHistoryEvent, int64, error)
	Update(ctx context.Context, event *models.MedicalHistoryEvent) error
	Delete(ctx context.Context, id uint) error
}

type MedicalHistoryRepository struct {
	db *gorm.DB
}

func NewMedicalHistoryRepository() IMedicalHistoryRepository {
	return &MedicalHistoryRepository{db: configs.GetDB()}
}

func (r *MedicalHistoryRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *MedicalHistoryRepository) Create(ctx context.Context, event *models.MedicalHistoryEvent) error {
	return r.getDB(ctx).Omit(clause.Associations).Create(event).Error
}

func (r *MedicalHistoryRepository) FindByID(ctx context.Context, id uint) (*models.MedicalHistoryEvent, error) {
	var event models.MedicalHistoryEvent
	err := r.getDB(ctx).Preload("Patient").Preload("Physician").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("MedicalHistoryRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *MedicalHistoryRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter MedicalHistoryFilter) ([]models.MedicalHistoryEvent, int64, error) {
	var events []models.MedicalHistoryEvent
	var total int64

	query := r.getDB(ctx).Model(&models.MedicalHistoryEvent{})
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.PhysicianID != 0 {
		query = query.Where("physician_id = ?", filter.PhysicianID)
	}
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("description ILIKE ? OR observations ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("MedicalHistoryRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return events, 0, nil
	}

	allowed := map[string]string{
		"id":         "id",
		"event_at":   "event_at",
		"severity":   "severity",
		"event_type": "event_type",
		"created_at": "created_at",
	}
	order := sortColumn(allowed, params.SortBy, "event_at")
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Preload("Patient").Preload("Physician").
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("MedicalHistoryRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return events, total, nil
}

func (r *MedicalHistoryRepository) Update(ctx context.Context, event *models.MedicalHistoryEvent) error {
	if event == nil || event.ID == 0 {
		return errors.New("evento de historial inválido para actualizar")
	}
	return r.getDB(ctx).Omit(clause.Associations).Save(event).Error
}

func (r *MedicalHistoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.MedicalHistoryEvent{}, id)
	if result.Error != nil {
		configslog.Log.Error("MedicalHistoryRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IMedicalHistoryRepository = (*MedicalHistoryRepository)(nil)
