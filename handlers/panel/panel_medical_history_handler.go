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

// PanelMedicalHistoryHandler serves the clinical-history pages of the panel.
type PanelMedicalHistoryHandler struct {
	service          services.IMedicalHistoryService
	patientService   services.IPatientService
	physicianService services.IPhysicianService
}

func NewPanelMedicalHistoryHandler() *PanelMedicalHistoryHandler {
	return &PanelMedicalHistoryHandler{
		service:          services.NewMedicalHistoryService(),
		patientService:   services.NewPatientService(),
		physicianService: services.NewPhysicianService(),
	}
}

func (h *PanelMedicalHistoryHandler) formSelects(c *fiber.Ctx) fiber.Map {
	data := fiber.Map{
		"EventTypes": models.EventTypes(),
		"Severities": models.Severities(),
	}
	if patients, err := h.patientService.GetAllPatients(c.UserContext()); err == nil {
		data["Patients"] = patients
	} else {
		configslog.Log.Error("Panel - history form patients", zap.Error(err))
	}
	if physicians, err := h.physicianService.GetActivePhysicians(c.UserContext(), 0); err == nil {
		data["Physicians"] = physicians
	} else {
		configslog.Log.Error("Panel - history form physicians", zap.Error(err))
	}
	return data
}

func (h *PanelMedicalHistoryHandler) ListEvents(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListEvents: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("event_at")
	}

	filter := repositories.MedicalHistoryFilter{
		PatientID:   uint(c.QueryInt("patient_id")),
		PhysicianID: uint(c.QueryInt("physician_id")),
		EventType:   models.EventType(c.Query("event_type")),
		Severity:    models.Severity(c.Query("severity")),
	}
	result, err := h.service.GetEventsPaginated(c.UserContext(), params, filter)

	renderData := fiber.Map{
		"Title":      "Historial Médico",
		"Result":     result,
		"Params":     params,
		"EventTypes": models.EventTypes(),
		"Severities": models.Severities(),
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudo listar el historial."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.MedicalHistoryEvent{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListEvents Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/history/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelMedicalHistoryHandler) ShowCreateEvent(c *fiber.Ctx) error {
	renderData := h.formSelects(c)
	renderData["Title"] = "Nuevo Evento de Historial"
	renderData["PatientID"] = c.QueryInt("patient_id")
	return renderer.Render(c, "panel/history/create", "layouts/panel_layout", renderData)
}

func (h *PanelMedicalHistoryHandler) CreateEvent(c *fiber.Ctx) error {
	var event models.MedicalHistoryEvent
	if err := c.BodyParser(&event); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/history/create", fiber.StatusSeeOther)
	}
	if event.PhysicianID != nil && *event.PhysicianID == 0 {
		event.PhysicianID = nil
	}

	if err := h.service.CreateEvent(c.UserContext(), &event); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/history/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Evento registrado en el historial.")
	return c.Redirect("/panel/history", fiber.StatusFound)
}

func (h *PanelMedicalHistoryHandler) ShowUpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/history")
	}

	event, err := h.service.GetEventByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Evento no encontrado.")
		return c.Redirect("/panel/history")
	}

	renderData := h.formSelects(c)
	renderData["Title"] = "Editar Evento de Historial"
	renderData["Event"] = event
	return renderer.Render(c, "panel/history/update", "layouts/panel_layout", renderData)
}

func (h *PanelMedicalHistoryHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/history")
	}
	redirectPathOnError := fmt.Sprintf("/panel/history/update/%d", id)

	var event models.MedicalHistoryEvent
	if err := c.BodyParser(&event); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	event.ID = uint(id)
	if event.PhysicianID != nil && *event.PhysicianID == 0 {
		event.PhysicianID = nil
	}

	if err := h.service.UpdateEvent(c.UserContext(), &event); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Evento actualizado correctamente.")
	return c.Redirect("/panel/history", fiber.StatusFound)
}

func (h *PanelMedicalHistoryHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/history", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteEvent(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Evento eliminado del historial.")
	}
	return c.Redirect("/panel/history", fiber.StatusSeeOther)
}
