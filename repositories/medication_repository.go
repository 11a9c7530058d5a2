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
)

// MedicationFilter narrows medication list queries.
type MedicationFilter struct {
	LowStock bool
	Active   *bool
}

// IMedicationRepository is the database boundary for the medication
// inventory.
type IMedicationRepository interface {
	Create(ctx context.Context, medication *models.Medication) error
	FindByID(ctx context.Context, id uint) (*models.Medication, error)
	FindAll(ctx context.Context) ([]models.Medication, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter MedicationFilter) ([]models.Medication, int64, error)
	Update(ctx context.Context, medication *models.Medication) error
	Delete(ctx context.Context, id uint) error
	CountLowStock(ctx context.Context) (int64, error)
}

type MedicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository() IMedicationRepository {
	return &MedicationRepository{db: configs.GetDB()}
}

func (r *MedicationRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *MedicationRepository) Create(ctx context.Context, medication *models.Medication) error {
	return r.getDB(ctx).Create(medication).Error
}

func (r *MedicationRepository) FindByID(ctx context.Context, id uint) (*models.Medication, error) {
	var medication models.Medication
	err := r.getDB(ctx).First(&medication, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("MedicationRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &medication, nil
}

// FindAll returns the whole inventory ordered by name, for form selects.
func (r *MedicationRepository) FindAll(ctx context.Context) ([]models.Medication, error) {
	var medications []models.Medication
	err := r.getDB(ctx).Order("name asc").Find(&medications).Error
	return medications, err
}

func (r *MedicationRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter MedicationFilter) ([]models.Medication, int64, error) {
	var medications []models.Medication
	var total int64

	query := r.getDB(ctx).Model(&models.Medication{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("name ILIKE ? OR laboratory ILIKE ?", like, like)
	}
	if filter.LowStock {
		query = query.Where("stock < ?", models.LowStockThreshold)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("MedicationRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return medications, 0, nil
	}

	allowed := map[string]string{
		"id":         "id",
		"name":       "name",
		"laboratory": "laboratory",
		"stock":      "stock",
		"unit_price": "unit_price",
		"created_at": "created_at",
	}
	order := sortColumn(allowed, params.SortBy, "name")
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&medications).Error
	if err != nil {
		configslog.Log.Error("MedicationRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return medications, total, nil
}

func (r *MedicationRepository) Update(ctx context.Context, medication *models.Medication) error {
	if medication == nil || medication.ID == 0 {
		return errors.New("medicamento inválido para actualizar")
	}
	return r.getDB(ctx).Save(medication).Error
}

// Delete removes the medication; prescriptions referencing it cascade.
func (r *MedicationRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Medication{}, id)
	if result.Error != nil {
		configslog.Log.Error("MedicationRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MedicationRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Medication{}).
		Where("stock < ?", models.LowStockThreshold).Count(&count).Error
	return count, err
}

var _ IMedicationRepository = (*MedicationRepository)(nil)
