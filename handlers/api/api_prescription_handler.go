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

// ApiPrescriptionHandler serves /api/v1/prescriptions.
type ApiPrescriptionHandler struct {
	service services.IPrescriptionService
}

func NewApiPrescriptionHandler() *ApiPrescriptionHandler {
	return &ApiPrescriptionHandler{service: services.NewPrescriptionService()}
}

func (h *ApiPrescriptionHandler) ListPrescriptions(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListPrescriptions: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("prescribed_at")
	}

	filter := repositories.PrescriptionFilter{
		PatientID:    uint(c.QueryInt("patient_id")),
		MedicationID: uint(c.QueryInt("medication_id")),
		TreatmentID:  uint(c.QueryInt("treatment_id")),
	}

	result, err := h.service.GetPrescriptionsPaginated(c.UserContext(), params, filter)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiPrescriptionHandler) CreatePrescription(c *fiber.Ctx) error {
	var prescription models.Prescription
	if err := c.BodyParser(&prescription); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	prescription.ID = 0

	if err := h.service.CreatePrescription(c.UserContext(), &prescription); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(prescription)
}

func (h *ApiPrescriptionHandler) GetPrescription(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	prescription, err := h.service.GetPrescriptionByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrPrescriptionNotFound)
	}
	return c.JSON(prescription)
}

func (h *ApiPrescriptionHandler) UpdatePrescription(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var prescription models.Prescription
	if err := c.BodyParser(&prescription); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	prescription.ID = id

	if err := h.service.UpdatePrescription(c.UserContext(), &prescription); err != nil {
		return respondError(c, err, services.ErrPrescriptionNotFound)
	}
	return c.JSON(prescription)
}

func (h *ApiPrescriptionHandler) DeletePrescription(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeletePrescription(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrPrescriptionNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
