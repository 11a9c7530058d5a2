package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"saludvital.cl/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// DSN builds the Postgres connection string from the environment.
// DATABASE_URL wins; otherwise the individual DB_* variables are combined.
func DSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := getenvDefault("DB_HOST", "localhost")
	port := getenvDefault("DB_PORT", "5432")
	user := getenvDefault("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	name := getenvDefault("DB_NAME", "clinica_salud_vital")
	ssl := getenvDefault("DB_SSLMODE", "disable")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, user, pass, name, ssl)
}

// InitDB opens the GORM connection and configures the pool.
func InitDB() {
	logLevel := gormlogger.Warn
	if os.Getenv("APP_ENV") == "development" {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Fatal("Database connection failed", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Could not obtain sql.DB from GORM", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Database connection established")
}

// GetDB returns the shared connection. InitDB must have been called.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

// CloseDB closes the underlying connection pool.
func CloseDB() {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
