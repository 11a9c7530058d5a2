package migrations

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSpecialtiesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating specialties table...")
	if err := db.AutoMigrate(&models.Specialty{}); err != nil {
		configslog.Log.Error("Failed to migrate specialties table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Specialties table migrated successfully")
	return nil
}
