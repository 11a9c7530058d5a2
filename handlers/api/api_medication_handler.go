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

// ApiMedicationHandler serves /api/v1/medications.
type ApiMedicationHandler struct {
	service services.IMedicationService
}

func NewApiMedicationHandler() *ApiMedicationHandler {
	return &ApiMedicationHandler{service: services.NewMedicationService()}
}

func (h *ApiMedicationHandler) ListMedications(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListMedications: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("name")
	}

	filter := repositories.MedicationFilter{
		LowStock: c.QueryBool("low_stock"),
	}
	if v := c.Query("active"); v != "" {
		active := v == "true" || v == "1"
		filter.Active = &active
	}

	result, err := h.service.GetMedicationsPaginated(c.UserContext(), params, filter)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiMedicationHandler) CreateMedication(c *fiber.Ctx) error {
	var medication models.Medication
	if err := c.BodyParser(&medication); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	medication.ID = 0

	if err := h.service.CreateMedication(c.UserContext(), &medication); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

func (h *ApiMedicationHandler) GetMedication(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	medication, err := h.service.GetMedicationByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrMedicationNotFound)
	}
	return c.JSON(medication)
}

func (h *ApiMedicationHandler) UpdateMedication(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var medication models.Medication
	if err := c.BodyParser(&medication); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	medication.ID = id

	if err := h.service.UpdateMedication(c.UserContext(), &medication); err != nil {
		return respondError(c, err, services.ErrMedicationNotFound)
	}
	return c.JSON(medication)
}

func (h *ApiMedicationHandler) DeleteMedication(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteMedication(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrMedicationNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
