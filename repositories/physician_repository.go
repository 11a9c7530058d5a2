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

// PhysicianFilter narrows physician list queries.
type PhysicianFilter struct {
	SpecialtyID uint
	Active      *bool
}

// IPhysicianRepository is the database boundary for physicians.
type IPhysicianRepository interface {
	Create(ctx context.Context, physician *models.Physician) error
	FindByID(ctx context.Context, id uint) (*models.Physician, error)
	FindAllActive(ctx context.Context, limit int) ([]models.Physician, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter PhysicianFilter) ([]models.Physician, int64, error)
	Update(ctx context.Context, physician *models.Physician) error
	Delete(ctx context.Context, id uint) error
	CountActive(ctx context.Context) (int64, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByRUT(ctx context.Context, rut string, excludeID uint) (bool, error)
}

type PhysicianRepository struct {
	db *gorm.DB
}

func NewPhysicianRepository() IPhysicianRepository {
	return &PhysicianRepository{db: configs.GetDB()}
}

func (r *PhysicianRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *PhysicianRepository) Create(ctx context.Context, physician *models.Physician) error {
	return r.getDB(ctx).Omit(clause.Associations).Create(physician).Error
}

func (r *PhysicianRepository) FindByID(ctx context.Context, id uint) (*models.Physician, error) {
	var physician models.Physician
	err := r.getDB(ctx).Preload("Specialty").First(&physician, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PhysicianRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &physician, nil
}

// FindAllActive returns active physicians, most recently hired first.
// limit <= 0 means no limit; used by form selects and the dashboard.
func (r *PhysicianRepository) FindAllActive(ctx context.Context, limit int) ([]models.Physician, error) {
	var physicians []models.Physician
	query := r.getDB(ctx).Preload("Specialty").Where("active = ?", true).
		Order("last_name asc, first_name asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&physicians).Error
	return physicians, err
}

func (r *PhysicianRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter PhysicianFilter) ([]models.Physician, int64, error) {
	var physicians []models.Physician
	var total int64

	query := r.getDB(ctx).Model(&models.Physician{})
	needsJoin := false
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.
			Joins("JOIN specialties ON specialties.id = physicians.specialty_id").
			Where("physicians.first_name ILIKE ? OR physicians.last_name ILIKE ? OR physicians.rut ILIKE ? OR specialties.name ILIKE ?",
				like, like, like, like)
		needsJoin = true
	}
	if filter.SpecialtyID != 0 {
		query = query.Where("physicians.specialty_id = ?", filter.SpecialtyID)
	}
	if filter.Active != nil {
		query = query.Where("physicians.active = ?", *filter.Active)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("PhysicianRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return physicians, 0, nil
	}

	allowed := map[string]string{
		"id":         "physicians.id",
		"rut":        "physicians.rut",
		"first_name": "physicians.first_name",
		"last_name":  "physicians.last_name",
		"hire_date":  "physicians.hire_date",
		"created_at": "physicians.created_at",
	}
	order := sortColumn(allowed, params.SortBy, "physicians.last_name")
	if needsJoin {
		query = query.Select("physicians.*")
	}
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Preload("Specialty").
		Find(&physicians).Error
	if err != nil {
		configslog.Log.Error("PhysicianRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return physicians, total, nil
}

func (r *PhysicianRepository) Update(ctx context.Context, physician *models.Physician) error {
	if physician == nil || physician.ID == 0 {
		return errors.New("médico inválido para actualizar")
	}
	return r.getDB(ctx).Omit(clause.Associations).Save(physician).Error
}

// Delete removes the physician; appointments cascade, history events keep
// their rows with the physician reference nulled.
func (r *PhysicianRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Physician{}, id)
	if result.Error != nil {
		configslog.Log.Error("PhysicianRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PhysicianRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Physician{}).Where("active = ?", true).Count(&count).Error
	return count, err
}

func (r *PhysicianRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Physician{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *PhysicianRepository) ExistsByRUT(ctx context.Context, rut string, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Physician{}).Where("rut = ?", rut)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

var _ IPhysicianRepository = (*PhysicianRepository)(nil)
