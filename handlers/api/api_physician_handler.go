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

// ApiPhysicianHandler serves /api/v1/physicians.
type ApiPhysicianHandler struct {
	service services.IPhysicianService
}

func NewApiPhysicianHandler() *ApiPhysicianHandler {
	return &ApiPhysicianHandler{service: services.NewPhysicianService()}
}

func (h *ApiPhysicianHandler) ListPhysicians(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListPhysicians: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("last_name")
	}

	filter := repositories.PhysicianFilter{
		SpecialtyID: uint(c.QueryInt("specialty_id")),
	}
	if v := c.Query("active"); v != "" {
		active := v == "true" || v == "1"
		filter.Active = &active
	}

	result, err := h.service.GetPhysiciansPaginated(c.UserContext(), params, filter)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiPhysicianHandler) CreatePhysician(c *fiber.Ctx) error {
	var physician models.Physician
	if err := c.BodyParser(&physician); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	physician.ID = 0

	if err := h.service.CreatePhysician(c.UserContext(), &physician); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(physician)
}

func (h *ApiPhysicianHandler) GetPhysician(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	physician, err := h.service.GetPhysicianByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrPhysicianNotFound)
	}
	return c.JSON(physician)
}

func (h *ApiPhysicianHandler) UpdatePhysician(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var physician models.Physician
	if err := c.BodyParser(&physician); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	physician.ID = id

	if err := h.service.UpdatePhysician(c.UserContext(), &physician); err != nil {
		return respondError(c, err, services.ErrPhysicianNotFound)
	}
	return c.JSON(physician)
}

func (h *ApiPhysicianHandler) DeletePhysician(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeletePhysician(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrPhysicianNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
