package migrations

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateMedicationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating medications table...")
	if err := db.AutoMigrate(&models.Medication{}); err != nil {
		configslog.Log.Error("Failed to migrate medications table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Medications table migrated successfully")
	return nil
}
