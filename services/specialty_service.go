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

// SpecialtyServiceError is a typed service error.
type SpecialtyServiceError string

func (e SpecialtyServiceError) Error() string { return string(e) }

const (
	ErrSpecialtyNotFound  SpecialtyServiceError = "especialidad no encontrada"
	ErrSpecialtyProtected SpecialtyServiceError = "la especialidad tiene médicos asociados y no puede eliminarse"
)

// ISpecialtyService manages medical specialties.
type ISpecialtyService interface {
	CreateSpecialty(ctx context.Context, specialty *models.Specialty) error
	GetSpecialtyByID(ctx context.Context, id uint) (*models.Specialty, error)
	GetAllSpecialties(ctx context.Context) ([]models.Specialty, error)
	GetSpecialtiesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateSpecialty(ctx context.Context, specialty *models.Specialty) error
	DeleteSpecialty(ctx context.Context, id uint) error
}

type SpecialtyService struct {
	repo repositories.ISpecialtyRepository
}

func NewSpecialtyService() ISpecialtyService {
	return &SpecialtyService{repo: repositories.NewSpecialtyRepository()}
}

// ValidateSpecialty checks the field rules. Pure; runs on create and update.
func ValidateSpecialty(specialty *models.Specialty) error {
	fieldErrs := validation.FieldErrors{}
	if strings.TrimSpace(specialty.Name) == "" {
		fieldErrs.Add("name", "el nombre de la especialidad es obligatorio")
	}
	return fieldErrs.OrNil()
}

func (s *SpecialtyService) CreateSpecialty(ctx context.Context, specialty *models.Specialty) error {
	if err := ValidateSpecialty(specialty); err != nil {
		return err
	}
	if taken, err := s.repo.ExistsByName(ctx, specialty.Name, 0); err != nil {
		return err
	} else if taken {
		return validation.FieldErrors{"name": "ya existe una especialidad con este nombre"}
	}
	if err := s.repo.Create(ctx, specialty); err != nil {
		configslog.Log.Error("CreateSpecialty failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Especialidad creada: ID %d, %s", specialty.ID, specialty.Name)
	return nil
}

func (s *SpecialtyService) GetSpecialtyByID(ctx context.Context, id uint) (*models.Specialty, error) {
	specialty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}
	return specialty, nil
}

func (s *SpecialtyService) GetAllSpecialties(ctx context.Context) ([]models.Specialty, error) {
	return s.repo.FindAll(ctx)
}

func (s *SpecialtyService) GetSpecialtiesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	specialties, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(specialties, params, total), nil
}

func (s *SpecialtyService) UpdateSpecialty(ctx context.Context, specialty *models.Specialty) error {
	if err := ValidateSpecialty(specialty); err != nil {
		return err
	}
	if _, err := s.GetSpecialtyByID(ctx, specialty.ID); err != nil {
		return err
	}
	if taken, err := s.repo.ExistsByName(ctx, specialty.Name, specialty.ID); err != nil {
		return err
	} else if taken {
		return validation.FieldErrors{"name": "ya existe una especialidad con este nombre"}
	}
	return s.repo.Update(ctx, specialty)
}

// DeleteSpecialty removes the specialty unless a physician references it.
func (s *SpecialtyService) DeleteSpecialty(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		configslog.SLog.Infof("Especialidad eliminada: ID %d", id)
		return nil
	case errors.Is(err, repositories.ErrSpecialtyInUse):
		return ErrSpecialtyProtected
	case errors.Is(err, repositories.ErrNotFound):
		return ErrSpecialtyNotFound
	default:
		configslog.Log.Error("DeleteSpecialty failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
}

var _ ISpecialtyService = (*SpecialtyService)(nil)
