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

// PanelTreatmentHandler serves the treatment pages of the panel.
type PanelTreatmentHandler struct {
	service services.ITreatmentService
}

func NewPanelTreatmentHandler() *PanelTreatmentHandler {
	return &PanelTreatmentHandler{service: services.NewTreatmentService()}
}

func (h *PanelTreatmentHandler) ListTreatments(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListTreatments: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("start_date")
	}

	filter := repositories.TreatmentFilter{
		PatientID:     uint(c.QueryInt("patient_id")),
		AppointmentID: uint(c.QueryInt("appointment_id")),
	}
	result, err := h.service.GetTreatmentsPaginated(c.UserContext(), params, filter)

	renderData := fiber.Map{
		"Title":  "Tratamientos",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar los tratamientos."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Treatment{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListTreatments Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/treatments/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelTreatmentHandler) ShowCreateTreatment(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/treatments/create", "layouts/panel_layout", fiber.Map{
		"Title":         "Nuevo Tratamiento",
		"AppointmentID": c.QueryInt("appointment_id"),
	})
}

// CreateTreatment registers the treatment and continues to the prescription
// form with the new treatment preselected.
func (h *PanelTreatmentHandler) CreateTreatment(c *fiber.Ctx) error {
	var treatment models.Treatment
	if err := c.BodyParser(&treatment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/treatments/create", fiber.StatusSeeOther)
	}

	if err := h.service.CreateTreatment(c.UserContext(), &treatment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/treatments/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tratamiento registrado. Ahora puede agregar recetas.")
	return c.Redirect(fmt.Sprintf("/panel/prescriptions/create?treatment_id=%d", treatment.ID), fiber.StatusFound)
}

func (h *PanelTreatmentHandler) ShowUpdateTreatment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/treatments")
	}

	treatment, err := h.service.GetTreatmentByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tratamiento no encontrado.")
		return c.Redirect("/panel/treatments")
	}

	return renderer.Render(c, "panel/treatments/update", "layouts/panel_layout", fiber.Map{
		"Title":     "Editar Tratamiento",
		"Treatment": treatment,
	})
}

func (h *PanelTreatmentHandler) UpdateTreatment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/treatments")
	}
	redirectPathOnError := fmt.Sprintf("/panel/treatments/update/%d", id)

	var treatment models.Treatment
	if err := c.BodyParser(&treatment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	treatment.ID = uint(id)

	if err := h.service.UpdateTreatment(c.UserContext(), &treatment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tratamiento actualizado correctamente.")
	return c.Redirect("/panel/treatments", fiber.StatusFound)
}

func (h *PanelTreatmentHandler) DeleteTreatment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/treatments", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteTreatment(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tratamiento eliminado junto con sus recetas.")
	}
	return c.Redirect("/panel/treatments", fiber.StatusSeeOther)
}
