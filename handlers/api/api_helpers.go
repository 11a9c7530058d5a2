package handlers

import (
	"errors"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/pkg/validation"
	"saludvital.cl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// parseIDParam reads the :id route parameter as a positive integer.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("identificador inválido")
	}
	return uint(id), nil
}

// respondError maps service errors onto the JSON error contract:
// field errors become 422, the entity's not-found error becomes 404,
// the specialty protect error becomes 409, anything else is a 500.
func respondError(c *fiber.Ctx, err error, notFound error) error {
	if fieldErrs, ok := validation.AsFieldErrors(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fieldErrs})
	}
	if notFound != nil && errors.Is(err, notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound.Error()})
	}
	if errors.Is(err, services.ErrSpecialtyProtected) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": services.ErrSpecialtyProtected.Error()})
	}
	configslog.Log.Error("API: unhandled service error", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error interno del servidor"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func listJSON(c *fiber.Ctx, data interface{}, meta interface{}) error {
	return c.JSON(fiber.Map{"data": data, "meta": meta})
}
