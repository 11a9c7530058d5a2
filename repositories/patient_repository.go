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

// PatientFilter narrows patient list queries.
type PatientFilter struct {
	BloodType models.BloodType
	Active    *bool
}

// IPatientRepository is the database boundary for patients.
type IPatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, id uint) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter PatientFilter) ([]models.Patient, int64, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByRUT(ctx context.Context, rut string, excludeID uint) (bool, error)
}

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository() IPatientRepository {
	return &PatientRepository{db: configs.GetDB()}
}

func (r *PatientRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.getDB(ctx).Create(patient).Error
}

func (r *PatientRepository) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.getDB(ctx).First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PatientRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &patient, nil
}

// FindAll returns every patient ordered like the panel lists them,
// for form selects.
func (r *PatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.getDB(ctx).Order("last_name asc, first_name asc").Find(&patients).Error
	return patients, err
}

func (r *PatientRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, filter PatientFilter) ([]models.Patient, int64, error) {
	var patients []models.Patient
	var total int64

	query := r.getDB(ctx).Model(&models.Patient{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR rut ILIKE ? OR email ILIKE ?",
			like, like, like, like)
	}
	if filter.BloodType != "" {
		query = query.Where("blood_type = ?", filter.BloodType)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("PatientRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return patients, 0, nil
	}

	allowed := map[string]string{
		"id":            "id",
		"rut":           "rut",
		"first_name":    "first_name",
		"last_name":     "last_name",
		"birth_date":    "birth_date",
		"registered_at": "registered_at",
		"created_at":    "created_at",
	}
	order := sortColumn(allowed, params.SortBy, "last_name")
	err := query.Order(order + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&patients).Error
	if err != nil {
		configslog.Log.Error("PatientRepository.Find: DB error", zap.Error(err))
		return nil, total, err
	}
	return patients, total, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	if patient == nil || patient.ID == 0 {
		return errors.New("paciente inválido para actualizar")
	}
	return r.getDB(ctx).Save(patient).Error
}

// Delete removes the patient; appointments, and through them treatments and
// prescriptions, go with it via the cascade constraints. History events
// cascade as well.
func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Patient{}, id)
	if result.Error != nil {
		configslog.Log.Error("PatientRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Patient{}).Count(&count).Error
	return count, err
}

func (r *PatientRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Patient{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *PatientRepository) ExistsByRUT(ctx context.Context, rut string, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Patient{}).Where("rut = ?", rut)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

var _ IPatientRepository = (*PatientRepository)(nil)
