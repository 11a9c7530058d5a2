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

// ApiPatientHandler serves /api/v1/patients.
type ApiPatientHandler struct {
	service services.IPatientService
}

func NewApiPatientHandler() *ApiPatientHandler {
	return &ApiPatientHandler{service: services.NewPatientService()}
}

func (h *ApiPatientHandler) ListPatients(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListPatients: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("last_name")
	}

	filter := repositories.PatientFilter{
		BloodType: models.BloodType(c.Query("blood_type")),
	}
	if v := c.Query("active"); v != "" {
		active := v == "true" || v == "1"
		filter.Active = &active
	}

	result, err := h.service.GetPatientsPaginated(c.UserContext(), params, filter)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiPatientHandler) CreatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	patient.ID = 0

	if err := h.service.CreatePatient(c.UserContext(), &patient); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

func (h *ApiPatientHandler) GetPatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	patient, err := h.service.GetPatientByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrPatientNotFound)
	}
	return c.JSON(patient)
}

func (h *ApiPatientHandler) UpdatePatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	patient.ID = id

	if err := h.service.UpdatePatient(c.UserContext(), &patient); err != nil {
		return respondError(c, err, services.ErrPatientNotFound)
	}
	return c.JSON(patient)
}

func (h *ApiPatientHandler) DeletePatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeletePatient(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrPatientNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
