package seeders

import (
	"errors"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSpecialties creates the base specialty catalog. Existing names are
// left untouched, so the seeder can run on every start.
func SeedSpecialties(db *gorm.DB) error {
	specialtiesToSeed := []models.Specialty{
		{Name: "Medicina General", Description: "Atención primaria y control de salud general"},
		{Name: "Pediatría", Description: "Atención de niños y adolescentes"},
		{Name: "Cardiología", Description: "Diagnóstico y tratamiento de enfermedades cardiovasculares"},
		{Name: "Dermatología", Description: "Enfermedades de la piel"},
		{Name: "Traumatología", Description: "Lesiones del aparato locomotor"},
		{Name: "Ginecología", Description: "Salud de la mujer"},
		{Name: "Oftalmología", Description: "Salud visual"},
	}

	configslog.SLog.Info("Seeding specialty catalog...")

	for _, specialtyToSeed := range specialtiesToSeed {
		var existing models.Specialty
		result := db.Where("name = ?", specialtyToSeed.Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Specialty seed lookup failed",
				zap.String("name", specialtyToSeed.Name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&specialtyToSeed).Error; err != nil {
			configslog.Log.Error("Specialty seed insert failed",
				zap.String("name", specialtyToSeed.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Especialidad '%s' creada (ID: %d)", specialtyToSeed.Name, specialtyToSeed.ID)
	}
	return nil
}
