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

// PanelPrescriptionHandler serves the prescription pages of the panel.
type PanelPrescriptionHandler struct {
	service           services.IPrescriptionService
	medicationService services.IMedicationService
}

func NewPanelPrescriptionHandler() *PanelPrescriptionHandler {
	return &PanelPrescriptionHandler{
		service:           services.NewPrescriptionService(),
		medicationService: services.NewMedicationService(),
	}
}

func (h *PanelPrescriptionHandler) medicationsForForm(c *fiber.Ctx) []models.Medication {
	medications, err := h.medicationService.GetAllMedications(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - medicationsForForm Error", zap.Error(err))
		return nil
	}
	return medications
}

func (h *PanelPrescriptionHandler) ListPrescriptions(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListPrescriptions: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("prescribed_at")
	}

	filter := repositories.PrescriptionFilter{
		PatientID:    uint(c.QueryInt("patient_id")),
		MedicationID: uint(c.QueryInt("medication_id")),
		TreatmentID:  uint(c.QueryInt("treatment_id")),
	}
	result, err := h.service.GetPrescriptionsPaginated(c.UserContext(), params, filter)

	renderData := fiber.Map{
		"Title":  "Recetas",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar las recetas."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Prescription{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListPrescriptions Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/prescriptions/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelPrescriptionHandler) ShowCreatePrescription(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/prescriptions/create", "layouts/panel_layout", fiber.Map{
		"Title":       "Nueva Receta",
		"TreatmentID": c.QueryInt("treatment_id"),
		"Medications": h.medicationsForForm(c),
	})
}

func (h *PanelPrescriptionHandler) CreatePrescription(c *fiber.Ctx) error {
	var prescription models.Prescription
	if err := c.BodyParser(&prescription); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/prescriptions/create", fiber.StatusSeeOther)
	}
	redirectPathOnError := fmt.Sprintf("/panel/prescriptions/create?treatment_id=%d", prescription.TreatmentID)

	if err := h.service.CreatePrescription(c.UserContext(), &prescription); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Receta registrada correctamente.")
	return c.Redirect("/panel/prescriptions", fiber.StatusFound)
}

func (h *PanelPrescriptionHandler) ShowUpdatePrescription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/prescriptions")
	}

	prescription, err := h.service.GetPrescriptionByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Receta no encontrada.")
		return c.Redirect("/panel/prescriptions")
	}

	return renderer.Render(c, "panel/prescriptions/update", "layouts/panel_layout", fiber.Map{
		"Title":        "Editar Receta",
		"Prescription": prescription,
		"Medications":  h.medicationsForForm(c),
	})
}

func (h *PanelPrescriptionHandler) UpdatePrescription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/prescriptions")
	}
	redirectPathOnError := fmt.Sprintf("/panel/prescriptions/update/%d", id)

	var prescription models.Prescription
	if err := c.BodyParser(&prescription); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	prescription.ID = uint(id)

	if err := h.service.UpdatePrescription(c.UserContext(), &prescription); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Receta actualizada correctamente.")
	return c.Redirect("/panel/prescriptions", fiber.StatusFound)
}

func (h *PanelPrescriptionHandler) DeletePrescription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/prescriptions", fiber.StatusSeeOther)
	}

	if err := h.service.DeletePrescription(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Receta eliminada correctamente.")
	}
	return c.Redirect("/panel/prescriptions", fiber.StatusSeeOther)
}
