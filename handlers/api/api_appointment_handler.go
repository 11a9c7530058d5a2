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

// ApiAppointmentHandler serves /api/v1/appointments.
type ApiAppointmentHandler struct {
	service services.IAppointmentService
}

func NewApiAppointmentHandler() *ApiAppointmentHandler {
	return &ApiAppointmentHandler{service: services.NewAppointmentService()}
}

func (h *ApiAppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListAppointments: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("scheduled_at")
	}

	filter := repositories.AppointmentFilter{
		PatientID:   uint(c.QueryInt("patient_id")),
		PhysicianID: uint(c.QueryInt("physician_id")),
		State:       models.AppointmentState(c.Query("state")),
	}

	result, err := h.service.GetAppointmentsPaginated(c.UserContext(), params, filter)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiAppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	appointment.ID = 0

	if err := h.service.CreateAppointment(c.UserContext(), &appointment); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (h *ApiAppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	appointment, err := h.service.GetAppointmentByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrAppointmentNotFound)
	}
	return c.JSON(appointment)
}

func (h *ApiAppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	appointment.ID = id

	if err := h.service.UpdateAppointment(c.UserContext(), &appointment); err != nil {
		return respondError(c, err, services.ErrAppointmentNotFound)
	}
	return c.JSON(appointment)
}

func (h *ApiAppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteAppointment(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrAppointmentNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
