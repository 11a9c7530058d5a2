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

// PanelMedicationHandler serves the medication inventory pages of the panel.
type PanelMedicationHandler struct {
	service services.IMedicationService
}

func NewPanelMedicationHandler() *PanelMedicationHandler {
	return &PanelMedicationHandler{service: services.NewMedicationService()}
}

func (h *PanelMedicationHandler) ListMedications(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListMedications: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("name")
	}

	filter := repositories.MedicationFilter{
		LowStock: c.QueryBool("low_stock"),
	}
	result, err := h.service.GetMedicationsPaginated(c.UserContext(), params, filter)

	renderData := fiber.Map{
		"Title":             "Medicamentos",
		"Result":            result,
		"Params":            params,
		"LowStockThreshold": models.LowStockThreshold,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar los medicamentos."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Medication{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListMedications Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/medications/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelMedicationHandler) ShowCreateMedication(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/medications/create", "layouts/panel_layout", fiber.Map{
		"Title": "Nuevo Medicamento",
	})
}

func (h *PanelMedicationHandler) CreateMedication(c *fiber.Ctx) error {
	var medication models.Medication
	if err := c.BodyParser(&medication); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/medications/create", fiber.StatusSeeOther)
	}
	medication.Active = checkboxOn(c.FormValue("active", "on"))

	if err := h.service.CreateMedication(c.UserContext(), &medication); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/medications/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Medicamento registrado correctamente.")
	return c.Redirect("/panel/medications", fiber.StatusFound)
}

func (h *PanelMedicationHandler) ShowUpdateMedication(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/medications")
	}

	medication, err := h.service.GetMedicationByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Medicamento no encontrado.")
		return c.Redirect("/panel/medications")
	}

	return renderer.Render(c, "panel/medications/update", "layouts/panel_layout", fiber.Map{
		"Title":      "Editar Medicamento",
		"Medication": medication,
	})
}

func (h *PanelMedicationHandler) UpdateMedication(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/medications")
	}
	redirectPathOnError := fmt.Sprintf("/panel/medications/update/%d", id)

	var medication models.Medication
	if err := c.BodyParser(&medication); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	medication.ID = uint(id)
	medication.Active = checkboxOn(c.FormValue("active"))

	if err := h.service.UpdateMedication(c.UserContext(), &medication); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Medicamento actualizado correctamente.")
	return c.Redirect("/panel/medications", fiber.StatusFound)
}

func (h *PanelMedicationHandler) DeleteMedication(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/medications", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteMedication(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Medicamento eliminado junto con las recetas que lo usaban.")
	}
	return c.Redirect("/panel/medications", fiber.StatusSeeOther)
}
