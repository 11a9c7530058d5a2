package seeders

import (
	"errors"
	"os"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultAdminEmail = "admin@saludvital.cl"

// SeedAdminUser ensures one admin account exists. The password comes from
// ADMIN_PASSWORD; without it a fresh install gets a known default that must
// be changed after the first login.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Usuario administrador '%s' ya existe, seed omitido.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Admin seed lookup failed", zap.String("email", email), zap.Error(result.Error))
		return result.Error
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "cambiar.123"
		configslog.SLog.Warn("ADMIN_PASSWORD no definido; se usa la contraseña por defecto.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Admin seed hash failed", zap.Error(err))
		return err
	}

	admin := models.User{
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Admin seed insert failed", zap.String("email", email), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Usuario administrador '%s' creado (ID: %d)", admin.Email, admin.ID)
	return nil
}
