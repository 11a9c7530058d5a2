package handlers

import (
	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ApiSpecialtyHandler serves /api/v1/specialties.
type ApiSpecialtyHandler struct {
	service services.ISpecialtyService
}

func NewApiSpecialtyHandler() *ApiSpecialtyHandler {
	return &ApiSpecialtyHandler{service: services.NewSpecialtyService()}
}

func (h *ApiSpecialtyHandler) ListSpecialties(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("API ListSpecialties: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("name")
	}

	result, err := h.service.GetSpecialtiesPaginated(c.UserContext(), params)
	if err != nil {
		return respondError(c, err, nil)
	}
	return listJSON(c, result.Data, result.Meta)
}

func (h *ApiSpecialtyHandler) CreateSpecialty(c *fiber.Ctx) error {
	var specialty models.Specialty
	if err := c.BodyParser(&specialty); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	specialty.ID = 0

	if err := h.service.CreateSpecialty(c.UserContext(), &specialty); err != nil {
		return respondError(c, err, nil)
	}
	return c.Status(fiber.StatusCreated).JSON(specialty)
}

func (h *ApiSpecialtyHandler) GetSpecialty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	specialty, err := h.service.GetSpecialtyByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, services.ErrSpecialtyNotFound)
	}
	return c.JSON(specialty)
}

func (h *ApiSpecialtyHandler) UpdateSpecialty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var specialty models.Specialty
	if err := c.BodyParser(&specialty); err != nil {
		return badRequest(c, "cuerpo de la petición inválido")
	}
	specialty.ID = id

	if err := h.service.UpdateSpecialty(c.UserContext(), &specialty); err != nil {
		return respondError(c, err, services.ErrSpecialtyNotFound)
	}
	return c.JSON(specialty)
}

func (h *ApiSpecialtyHandler) DeleteSpecialty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.service.DeleteSpecialty(c.UserContext(), id); err != nil {
		return respondError(c, err, services.ErrSpecialtyNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
