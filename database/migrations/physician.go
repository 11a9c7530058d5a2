package migrations

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePhysiciansTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating physicians table...")
	if err := db.AutoMigrate(&models.Physician{}); err != nil {
		configslog.Log.Error("Failed to migrate physicians table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Physicians table migrated successfully")
	return nil
}
