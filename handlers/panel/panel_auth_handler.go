package handlers

import (
	"net/http"
	"strings"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/pkg/flashmessages"
	"saludvital.cl/pkg/renderer"
	"saludvital.cl/services"
	"saludvital.cl/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler serves the panel login and logout.
type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// ShowLogin renders the login form; an already logged-in user goes straight
// to the dashboard.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if userID, _ := c.Locals("userID").(uint); userID != 0 {
		return c.Redirect("/panel/dashboard")
	}
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title": "Iniciar Sesión",
	}, http.StatusOK)
}

// Login checks the credentials and opens the session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ingrese correo y contraseña.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session start failed", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo iniciar la sesión.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.Login(sess, user.ID, user.Name, user.IsAdmin); err != nil {
		configslog.Log.Error("Login: session save failed", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo iniciar la sesión.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/panel/dashboard", fiber.StatusFound)
}

// Logout closes the session and returns to the login page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = utils.Logout(sess)
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
