package services

import (
	"context"
	"testing"

	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSpecialtyRepo struct {
	deleteErr error
	deleted   []uint
}

func (r *stubSpecialtyRepo) Create(context.Context, *models.Specialty) error { return nil }

func (r *stubSpecialtyRepo) FindByID(_ context.Context, id uint) (*models.Specialty, error) {
	return &models.Specialty{BaseModel: models.BaseModel{ID: id}, Name: "Cardiología"}, nil
}

func (r *stubSpecialtyRepo) FindAll(context.Context) ([]models.Specialty, error) { return nil, nil }

func (r *stubSpecialtyRepo) FindAllPaginated(context.Context, queryparams.ListParams) ([]models.Specialty, int64, error) {
	return nil, 0, nil
}

func (r *stubSpecialtyRepo) Update(context.Context, *models.Specialty) error { return nil }

func (r *stubSpecialtyRepo) Delete(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubSpecialtyRepo) CountPhysicians(context.Context, uint) (int64, error) { return 0, nil }
func (r *stubSpecialtyRepo) Count(context.Context) (int64, error)                 { return 0, nil }

func (r *stubSpecialtyRepo) ExistsByName(context.Context, string, uint) (bool, error) {
	return false, nil
}

func TestDeleteSpecialty_BlockedWhilePhysiciansReferenceIt(t *testing.T) {
	repo := &stubSpecialtyRepo{deleteErr: repositories.ErrSpecialtyInUse}
	service := &SpecialtyService{repo: repo}

	err := service.DeleteSpecialty(context.Background(), 3)
	require.ErrorIs(t, err, ErrSpecialtyProtected)
	assert.Empty(t, repo.deleted)
}

func TestDeleteSpecialty_Unreferenced(t *testing.T) {
	repo := &stubSpecialtyRepo{}
	service := &SpecialtyService{repo: repo}

	require.NoError(t, service.DeleteSpecialty(context.Background(), 3))
	assert.Equal(t, []uint{3}, repo.deleted)
}

func TestDeleteSpecialty_Unknown(t *testing.T) {
	repo := &stubSpecialtyRepo{deleteErr: repositories.ErrNotFound}
	service := &SpecialtyService{repo: repo}

	err := service.DeleteSpecialty(context.Background(), 99)
	require.ErrorIs(t, err, ErrSpecialtyNotFound)
}
