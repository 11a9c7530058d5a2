package handlers

import (
	"fmt"
	"net/http"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/flashmessages"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/pkg/renderer"
	"saludvital.cl/repositories"
	"saludvital.cl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelPhysicianHandler serves the physician pages of the panel.
type PanelPhysicianHandler struct {
	service          services.IPhysicianService
	specialtyService services.ISpecialtyService
}

func NewPanelPhysicianHandler() *PanelPhysicianHandler {
	return &PanelPhysicianHandler{
		service:          services.NewPhysicianService(),
		specialtyService: services.NewSpecialtyService(),
	}
}

func (h *PanelPhysicianHandler) specialtiesForForm(c *fiber.Ctx) []models.Specialty {
	specialties, err := h.specialtyService.GetAllSpecialties(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - specialtiesForForm Error", zap.Error(err))
		return nil
	}
	return specialties
}

func (h *PanelPhysicianHandler) ListPhysicians(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListPhysicians: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("last_name")
	}

	filter := repositories.PhysicianFilter{
		SpecialtyID: uint(c.QueryInt("specialty_id")),
	}
	result, err := h.service.GetPhysiciansPaginated(c.UserContext(), params, filter)

	renderData := fiber.Map{
		"Title":       "Médicos",
		"Result":      result,
		"Params":      params,
		"Specialties": h.specialtiesForForm(c),
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar los médicos."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Physician{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListPhysicians Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/physicians/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelPhysicianHandler) ShowCreatePhysician(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/physicians/create", "layouts/panel_layout", fiber.Map{
		"Title":       "Nuevo Médico",
		"Specialties": h.specialtiesForForm(c),
	})
}

func (h *PanelPhysicianHandler) CreatePhysician(c *fiber.Ctx) error {
	var physician models.Physician
	if err := c.BodyParser(&physician); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/physicians/create", fiber.StatusSeeOther)
	}
	physician.Active = checkboxOn(c.FormValue("active", "on"))

	if err := h.service.CreatePhysician(c.UserContext(), &physician); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/physicians/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Médico registrado correctamente.")
	return c.Redirect("/panel/physicians", fiber.StatusFound)
}

func (h *PanelPhysicianHandler) ShowUpdatePhysician(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/physicians")
	}

	physician, err := h.service.GetPhysicianByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Médico no encontrado.")
		return c.Redirect("/panel/physicians")
	}

	return renderer.Render(c, "panel/physicians/update", "layouts/panel_layout", fiber.Map{
		"Title":       "Editar Médico",
		"Physician":   physician,
		"Specialties": h.specialtiesForForm(c),
	})
}

func (h *PanelPhysicianHandler) UpdatePhysician(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/physicians")
	}
	redirectPathOnError := fmt.Sprintf("/panel/physicians/update/%d", id)

	var physician models.Physician
	if err := c.BodyParser(&physician); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	physician.ID = uint(id)
	physician.Active = checkboxOn(c.FormValue("active"))

	if err := h.service.UpdatePhysician(c.UserContext(), &physician); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Médico actualizado correctamente.")
	return c.Redirect("/panel/physicians", fiber.StatusFound)
}

func (h *PanelPhysicianHandler) DeletePhysician(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/physicians", fiber.StatusSeeOther)
	}

	if err := h.service.DeletePhysician(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Médico eliminado; sus consultas se eliminaron y el historial conserva los eventos.")
	}
	return c.Redirect("/panel/physicians", fiber.StatusSeeOther)
}
