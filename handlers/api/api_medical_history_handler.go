package handlers

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/repositories"
	"saludvital.cl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ApiMedicalHistoryHandler serves /api/v1/medical-history.
type ApiMedicalHistoryHandler struct {
	service services.IMedicalHistoryService
}

func NewApiMedicalHistoryHandler() *ApiMedicalHistoryHandler {
	return &ApiMedicalHistoryHandler{service: services.NewMedicalHistoryService()}
}

func (h *ApiMedicalHistoryHandler) ListEvents(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListEvents: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("event_at")
	}

	filter := repositories.MedicalHistoryFilter{
		PatientID:   uint(c.QueryInt("patient_id")),
		PhysicianID: uint(c.QueryInt("physician_id")),
		EventType:   models.EventType(c.Query("event_type")),
		Severity:    models.Severity(c.Query("severity")),
	}

	result, err := h.service.GetEventsPaginated(c.UserContext(), params, filter)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiMedicalHistoryHandler) CreateEvent(c *fiber.Ctx) error {
	var event models.MedicalHistoryEvent
	if err := c.BodyParser(&event); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	event.ID = 0

	if err := h.service.CreateEvent(c.UserContext(), &event); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *ApiMedicalHistoryHandler) GetEvent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	event, err := h.service.GetEventByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrHistoryEventNotFound)
	}
	return c.JSON(event)
}

func (h *ApiMedicalHistoryHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var event models.MedicalHistoryEvent
	if err := c.BodyParser(&event); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	event.ID = id

	if err := h.service.UpdateEvent(c.UserContext(), &event); err != nil {
		return respondError(c, err, services.ErrHistoryEventNotFound)
	}
	return c.JSON(event)
}

func (h *ApiMedicalHistoryHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteEvent(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrHistoryEventNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
