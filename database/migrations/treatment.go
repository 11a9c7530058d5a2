package migrations

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTreatmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating treatments table...")
	if err := db.AutoMigrate(&models.Treatment{}); err != nil {
		configslog.Log.Error("Failed to migrate treatments table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Treatments table migrated successfully")
	return nil
}
