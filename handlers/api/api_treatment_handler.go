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

// ApiTreatmentHandler serves /api/v1/treatments.
type ApiTreatmentHandler struct {
	service services.ITreatmentService
}

func NewApiTreatmentHandler() *ApiTreatmentHandler {
	return &ApiTreatmentHandler{service: services.NewTreatmentService()}
}

func (h *ApiTreatmentHandler) ListTreatments(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListTreatments: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("start_date")
	}

	filter := repositories.TreatmentFilter{
		PatientID:     uint(c.QueryInt("patient_id")),
		AppointmentID: uint(c.QueryInt("appointment_id")),
	}

	result, err := h.service.GetTreatmentsPaginated(c.UserContext(), params, filter)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiTreatmentHandler) CreateTreatment(c *fiber.Ctx) error {
	var treatment models.Treatment
	if err := c.BodyParser(&treatment); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	treatment.ID = 0

	if err := h.service.CreateTreatment(c.UserContext(), &treatment); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(treatment)
}

func (h *ApiTreatmentHandler) GetTreatment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	treatment, err := h.service.GetTreatmentByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrTreatmentNotFound)
	}
	return c.JSON(treatment)
}

func (h *ApiTreatmentHandler) UpdateTreatment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var treatment models.Treatment
	if err := c.BodyParser(&treatment); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	treatment.ID = id

	if err := h.service.UpdateTreatment(c.UserContext(), &treatment); err != nil {
		return respondError(c, err, services.ErrTreatmentNotFound)
	}
	return c.JSON(treatment)
}

func (h *ApiTreatmentHandler) DeleteTreatment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteTreatment(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrTreatmentNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
