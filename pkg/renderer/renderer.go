package renderer

import (
	"net/http"

	"saludvital.cl/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View data keys shared by every panel template.
const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// SetFlashMessages copies flash content into the render data.
func SetFlashMessages(data fiber.Map, msgs flashmessages.Messages) {
	if msgs.Success != "" {
		data[FlashSuccessKeyView] = msgs.Success
	}
	if msgs.Error != "" {
		data[FlashErrorKeyView] = msgs.Error
	}
}

// Render renders a panel view inside a layout, defaulting the status code
// to 200 and attaching the logged-in user name from locals.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if name, ok := c.Locals("userName").(string); ok {
		data["UserName"] = name
	}
	SetFlashMessages(data, flashmessages.GetFlashMessages(c))
	return c.Status(code).Render(view, data, layout)
}
