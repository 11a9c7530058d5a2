package migrations

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePrescriptionsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating prescriptions table...")
	if err := db.AutoMigrate(&models.Prescription{}); err != nil {
		configslog.Log.Error("Failed to migrate prescriptions table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Prescriptions table migrated successfully")
	return nil
}
