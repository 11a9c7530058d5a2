package configs

import (
	"os"
	"time"

	"saludvital.cl/configs/configsdatabase"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv reads the .env file if present. Missing files are not an error:
// production environments inject variables directly.
func LoadEnv() {
	_ = godotenv.Load()
}

// Port returns the HTTP listen port.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3000"
}

// GetDB proxies the shared GORM connection.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

var sessionStore *session.Store

// SetupSession creates (once) the cookie-backed session store used by the
// panel. Sessions expire after 24 hours of inactivity.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:clinica_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return sessionStore
}
