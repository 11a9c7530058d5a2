package services

import (
	"testing"

	"saludvital.cl/models"
	"saludvital.cl/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMedication() *models.Medication {
	return &models.Medication{
		Name:       "Paracetamol 500mg",
		Laboratory: "Laboratorio Chile",
		Stock:      150,
		UnitPrice:  990,
		Active:     true,
	}
}

func TestValidateMedication_OK(t *testing.T) {
	assert.NoError(t, ValidateMedication(validMedication()))
}

func TestValidateMedication_StockBoundary(t *testing.T) {
	medication := validMedication()

	medication.Stock = 0
	assert.NoError(t, ValidateMedication(medication), "zero stock means sold out, not invalid")

	medication.Stock = -1
	err := ValidateMedication(medication)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "stock")
}

func TestValidateMedication_PriceBoundary(t *testing.T) {
	medication := validMedication()

	medication.UnitPrice = 0.01
	assert.NoError(t, ValidateMedication(medication))

	medication.UnitPrice = 0
	err := ValidateMedication(medication)
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "unit_price")
}

func TestValidateMedication_MissingNameAndLab(t *testing.T) {
	err := ValidateMedication(&models.Medication{UnitPrice: 100})
	require.Error(t, err)
	fieldErrs, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "laboratory")
}

func TestMedicationLowStock(t *testing.T) {
	assert.True(t, models.Medication{Stock: models.LowStockThreshold - 1}.LowStock())
	assert.False(t, models.Medication{Stock: models.LowStockThreshold}.LowStock())
}
