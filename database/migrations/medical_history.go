package migrations

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateMedicalHistoryTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating medical_history_events table...")
	if err := db.AutoMigrate(&models.MedicalHistoryEvent{}); err != nil {
		configslog.Log.Error("Failed to migrate medical_history_events table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Medical history events table migrated successfully")
	return nil
}
