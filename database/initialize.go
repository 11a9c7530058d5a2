package database

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/database/migrations"
	"saludvital.cl/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and seeders inside a single transaction so a
// half-applied schema never survives a failure.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Ni -migrate ni -seed indicados; no hay nada que hacer.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("No se pudo iniciar la transacción", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Inicialización de base de datos fallida (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Error durante la inicialización; revirtiendo transacción.", zap.Error(err))
			if rbErr := tx.Rollback().Error; rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Error adicional durante rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Inicializando base de datos...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migración fallida", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migraciones completadas.")
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding fallido", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders completados.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit fallido", zap.Error(err))
		return
	}

	configslog.SLog.Info("Base de datos inicializada correctamente")
}

// RunMigrationsInOrder migrates the tables respecting the foreign-key
// dependencies: referenced tables first.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"specialties", migrations.MigrateSpecialtiesTable},
		{"physicians", migrations.MigratePhysiciansTable},
		{"patients", migrations.MigratePatientsTable},
		{"appointments", migrations.MigrateAppointmentsTable},
		{"treatments", migrations.MigrateTreatmentsTable},
		{"medications", migrations.MigrateMedicationsTable},
		{"prescriptions", migrations.MigratePrescriptionsTable},
		{"medical_history_events", migrations.MigrateMedicalHistoryTable},
	}
	for _, step := range steps {
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migration step failed", zap.String("table", step.name), zap.Error(err))
			return err
		}
	}
	return nil
}

// RunSeeders loads the idempotent base data.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedAdminUser(db); err != nil {
		return err
	}
	return seeders.SeedSpecialties(db)
}
