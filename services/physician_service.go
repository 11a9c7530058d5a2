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

// PhysicianServiceError is a typed service error.
type PhysicianServiceError string

func (e PhysicianServiceError) Error() string { return string(e) }

const (
	ErrPhysicianNotFound PhysicianServiceError = "médico no encontrado"
)

// IPhysicianService manages physicians.
type IPhysicianService interface {
	CreatePhysician(ctx context.Context, physician *models.Physician) error
	GetPhysicianByID(ctx context.Context, id uint) (*models.Physician, error)
	GetActivePhysicians(ctx context.Context, limit int) ([]models.Physician, error)
	GetPhysiciansPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.PhysicianFilter) (*queryparams.PaginatedResult, error)
	UpdatePhysician(ctx context.Context, physician *models.Physician) error
	DeletePhysician(ctx context.Context, id uint) error
}

type PhysicianService struct {
	repo          repositories.IPhysicianRepository
	specialtyRepo repositories.ISpecialtyRepository
}

func NewPhysicianService() IPhysicianService {
	return &PhysicianService{
		repo:          repositories.NewPhysicianRepository(),
		specialtyRepo: repositories.NewSpecialtyRepository(),
	}
}

// ValidatePhysician checks the field rules and normalizes the phone in
// place. The specialty existence check needs the database and lives in the
// service methods.
func ValidatePhysician(physician *models.Physician) error {
	fieldErrs := validation.FieldErrors{}

	fieldErrs.AddErr("rut", validation.ValidateRUT(physician.RUT))
	if strings.TrimSpace(physician.FirstName) == "" {
		fieldErrs.Add("first_name", "el nombre es obligatorio")
	}
	if strings.TrimSpace(physician.LastName) == "" {
		fieldErrs.Add("last_name", "el apellido es obligatorio")
	}
	if !validation.ValidEmail(physician.Email) {
		fieldErrs.Add("email", "correo electrónico inválido")
	}
	if normalized, err := validation.NormalizePhone(physician.Phone); err != nil {
		fieldErrs.AddErr("phone", err)
	} else {
		physician.Phone = normalized
	}
	if physician.SpecialtyID == 0 {
		fieldErrs.Add("specialty_id", "la especialidad es obligatoria")
	}

	return fieldErrs.OrNil()
}

func (s *PhysicianService) checkPhysicianReferences(ctx context.Context, physician *models.Physician) error {
	fieldErrs := validation.FieldErrors{}
	if physician.SpecialtyID != 0 {
		if _, err := s.specialtyRepo.FindByID(ctx, physician.SpecialtyID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				fieldErrs.Add("specialty_id", "la especialidad indicada no existe")
			} else {
				return err
			}
		}
	}
	if taken, err := s.repo.ExistsByRUT(ctx, physician.RUT, physician.ID); err != nil {
		return err
	} else if taken {
		fieldErrs.Add("rut", "este RUT ya está registrado")
	}
	if taken, err := s.repo.ExistsByEmail(ctx, physician.Email, physician.ID); err != nil {
		return err
	} else if taken {
		fieldErrs.Add("email", "este correo electrónico ya está registrado")
	}
	return fieldErrs.OrNil()
}

func (s *PhysicianService) CreatePhysician(ctx context.Context, physician *models.Physician) error {
	if err := ValidatePhysician(physician); err != nil {
		return err
	}
	if err := s.checkPhysicianReferences(ctx, physician); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, physician); err != nil {
		configslog.Log.Error("CreatePhysician failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Médico creado: ID %d, %s", physician.ID, physician.FullName())
	return nil
}

func (s *PhysicianService) GetPhysicianByID(ctx context.Context, id uint) (*models.Physician, error) {
	physician, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPhysicianNotFound
		}
		return nil, err
	}
	return physician, nil
}

func (s *PhysicianService) GetActivePhysicians(ctx context.Context, limit int) ([]models.Physician, error) {
	return s.repo.FindAllActive(ctx, limit)
}

func (s *PhysicianService) GetPhysiciansPaginated(ctx context.Context, params queryparams.ListParams, filter repositories.PhysicianFilter) (*queryparams.PaginatedResult, error) {
	params.Validate()
	physicians, total, err := s.repo.FindAllPaginated(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(physicians, params, total), nil
}

func (s *PhysicianService) UpdatePhysician(ctx context.Context, physician *models.Physician) error {
	existing, err := s.GetPhysicianByID(ctx, physician.ID)
	if err != nil {
		return err
	}
	if err := ValidatePhysician(physician); err != nil {
		return err
	}
	if err := s.checkPhysicianReferences(ctx, physician); err != nil {
		return err
	}
	// Hire date is immutable.
	physician.HireDate = existing.HireDate
	physician.CreatedAt = existing.CreatedAt
	physician.Specialty = models.Specialty{}
	return s.repo.Update(ctx, physician)
}

// DeletePhysician removes the physician; appointments cascade and history
// events keep their rows with the reference nulled.
func (s *PhysicianService) DeletePhysician(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrPhysicianNotFound
	}
	if err == nil {
		configslog.SLog.Infof("Médico eliminado: ID %d", id)
	}
	return err
}

var _ IPhysicianService = (*PhysicianService)(nil)
