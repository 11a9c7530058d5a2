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

// ISpecialtyRepository is the database boundary for medical specialties.
type ISpecialtyRepository interface {
	Create(ctx context.Context, specialty *models.Specialty) error
	FindByID(ctx context.Context, id uint) (*models.Specialty, error)
	FindAll(ctx context.Context) ([]models.Specialty, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Specialty, int64, error)
	Update(ctx context.Context, specialty *models.Specialty) error
	Delete(ctx context.Context, id uint) error
	CountPhysicians(ctx context.Context, specialtyID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
}

type SpecialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository() ISpecialtyRepository {
	return &SpecialtyRepository{db: configs.GetDB()}
}

func (r *SpecialtyRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *SpecialtyRepository) Create(ctx context.Context, specialty *models.Specialty) error {
	return r.getDB(ctx).Create(specialty).Error
}

func (r *SpecialtyRepository) FindByID(ctx context.Context, id uint) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.getDB(ctx).First(&specialty, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SpecialtyRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &specialty, nil
}

// FindAll returns every specialty ordered by name, for form selects.
func (r *SpecialtyRepository) FindAll(ctx context.Context) ([]models.Specialty, error) {
	var specialties []models.Specialty
	err := r.getDB(ctx).Order("name asc").Find(&specialties).Error
	return specialties, err
}

func (r *SpecialtyRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Specialty, int64, error) {
	var specialties []models.Specialty
	var total int64

	query := r.getDB(ctx).Model(&models.Specialty{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("SpecialtyRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return specialties, 0, nil
	}

	allowed := map[string]string{"id": "id", "name": "name", "created_at": "created_at"}
	order := sortColumn(allowed, params.SortBy, "name")
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&specialties).Error
	if err != nil {
		configslog.Log.Error("SpecialtyRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return specialties, total, nil
}

func (r *SpecialtyRepository) Update(ctx context.Context, specialty *models.Specialty) error {
	if specialty == nil || specialty.ID == 0 {
		return errors.New("especialidad inválida para actualizar")
	}
	return r.getDB(ctx).Save(specialty).Error
}

// Delete removes a specialty, refusing while physicians reference it.
func (r *SpecialtyRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		var referenced int64
		if err := tx.Model(&models.Physician{}).Where("specialty_id = ?", id).Count(&referenced).Error; err != nil {
			return err
		}
		if referenced > 0 {
			return ErrSpecialtyInUse
		}
		result := tx.Delete(&models.Specialty{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *SpecialtyRepository) CountPhysicians(ctx context.Context, specialtyID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Physician{}).Where("specialty_id = ?", specialtyID).Count(&count).Error
	return count, err
}

func (r *SpecialtyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Specialty{}).Count(&count).Error
	return count, err
}

func (r *SpecialtyRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Specialty{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

var _ ISpecialtyRepository = (*SpecialtyRepository)(nil)
