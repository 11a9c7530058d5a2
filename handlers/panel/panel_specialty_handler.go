package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/flashmessages"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/pkg/renderer"
	"saludvital.cl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelSpecialtyHandler serves the specialty pages of the panel.
type PanelSpecialtyHandler struct {
	service services.ISpecialtyService
}

func NewPanelSpecialtyHandler() *PanelSpecialtyHandler {
	return &PanelSpecialtyHandler{service: services.NewSpecialtyService()}
}

func (h *PanelSpecialtyHandler) ListSpecialties(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListSpecialties: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("name")
	}

	result, err := h.service.GetSpecialtiesPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Especialidades",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar las especialidades."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Specialty{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListSpecialties Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/specialties/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelSpecialtyHandler) ShowCreateSpecialty(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/specialties/create", "layouts/panel_layout", fiber.Map{
		"Title": "Nueva Especialidad",
	})
}

func (h *PanelSpecialtyHandler) CreateSpecialty(c *fiber.Ctx) error {
	var specialty models.Specialty
	if err := c.BodyParser(&specialty); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/specialties/create", fiber.StatusSeeOther)
	}

	if err := h.service.CreateSpecialty(c.UserContext(), &specialty); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/specialties/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Especialidad creada correctamente.")
	return c.Redirect("/panel/specialties", fiber.StatusFound)
}

func (h *PanelSpecialtyHandler) ShowUpdateSpecialty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/specialties")
	}

	specialty, err := h.service.GetSpecialtyByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Especialidad no encontrada.")
		return c.Redirect("/panel/specialties")
	}

	return renderer.Render(c, "panel/specialties/update", "layouts/panel_layout", fiber.Map{
		"Title":     "Editar Especialidad",
		"Specialty": specialty,
	})
}

func (h *PanelSpecialtyHandler) UpdateSpecialty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/specialties")
	}
	redirectPathOnError := fmt.Sprintf("/panel/specialties/update/%d", id)

	var specialty models.Specialty
	if err := c.BodyParser(&specialty); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	specialty.ID = uint(id)

	if err := h.service.UpdateSpecialty(c.UserContext(), &specialty); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Especialidad actualizada correctamente.")
	return c.Redirect("/panel/specialties", fiber.StatusFound)
}

// DeleteSpecialty refuses to remove a specialty that still has physicians.
func (h *PanelSpecialtyHandler) DeleteSpecialty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/specialties", fiber.StatusSeeOther)
	}

	err = h.service.DeleteSpecialty(c.UserContext(), uint(id))
	switch {
	case err == nil:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Especialidad eliminada correctamente.")
	case errors.Is(err, services.ErrSpecialtyProtected):
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ErrSpecialtyProtected.Error())
	default:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	}
	return c.Redirect("/panel/specialties", fiber.StatusSeeOther)
}
