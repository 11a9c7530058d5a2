package handlers

import (
	"net/http"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/pkg/renderer"
	"saludvital.cl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler serves the panel home page.
type DashboardHandler struct {
	service services.IDashboardService
}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{service: services.NewDashboardService()}
}

// ShowDashboard renders the overview counters and the two short lists.
func (h *DashboardHandler) ShowDashboard(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext())
	renderData := fiber.Map{
		"Title": "Panel de Control",
		"Stats": stats,
	}
	if err != nil {
		configslog.Log.Error("Panel - ShowDashboard Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "No se pudieron cargar las estadísticas."
		renderData["Stats"] = &services.DashboardStats{}
	}
	return renderer.Render(c, "panel/dashboard", "layouts/panel_layout", renderData, http.StatusOK)
}
