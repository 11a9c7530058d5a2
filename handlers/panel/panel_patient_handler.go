package handlers

import (
	"fmt"
	"net/http"
	"time"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/pkg/flashmessages"
	"saludvital.cl/pkg/queryparams"
	"saludvital.cl/pkg/renderer"
	"saludvital.cl/repositories"
	"saludvital.cl/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelPatientHandler serves the patient pages of the panel.
type PanelPatientHandler struct {
	service services.IPatientService
}

func NewPanelPatientHandler() *PanelPatientHandler {
	return &PanelPatientHandler{service: services.NewPatientService()}
}

// parseFormDate reads an HTML date input (yyyy-mm-dd).
func parseFormDate(value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// checkboxOn interprets the value of an HTML checkbox.
func checkboxOn(value string) bool {
	return value == "on" || value == "true" || value == "1"
}

func (h *PanelPatientHandler) ListPatients(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListPatients: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("last_name")
	}

	filter := repositories.PatientFilter{
		BloodType: models.BloodType(c.Query("blood_type")),
	}
	result, err := h.service.GetPatientsPaginated(c.UserContext(), params, filter)

	renderData := fiber.Map{
		"Title":      "Pacientes",
		"Result":     result,
		"Params":     params,
		"BloodTypes": models.BloodTypes(),
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar los pacientes."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Patient{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListPatients Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/patients/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelPatientHandler) ShowCreatePatient(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/patients/create", "layouts/panel_layout", fiber.Map{
		"Title":      "Nuevo Paciente",
		"BloodTypes": models.BloodTypes(),
	})
}

func (h *PanelPatientHandler) CreatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/patients/create", fiber.StatusSeeOther)
	}
	if birthDate, ok := parseFormDate(c.FormValue("birth_date")); ok {
		patient.BirthDate = birthDate
	}
	patient.Active = checkboxOn(c.FormValue("active", "on"))

	if err := h.service.CreatePatient(c.UserContext(), &patient); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/patients/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Paciente registrado correctamente.")
	return c.Redirect("/panel/patients", fiber.StatusFound)
}

func (h *PanelPatientHandler) ShowUpdatePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/patients")
	}

	patient, err := h.service.GetPatientByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Paciente no encontrado.")
		return c.Redirect("/panel/patients")
	}

	return renderer.Render(c, "panel/patients/update", "layouts/panel_layout", fiber.Map{
		"Title":      "Editar Paciente",
		"Patient":    patient,
		"BloodTypes": models.BloodTypes(),
	})
}

func (h *PanelPatientHandler) UpdatePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/patients")
	}
	redirectPathOnError := fmt.Sprintf("/panel/patients/update/%d", id)

	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	patient.ID = uint(id)
	if birthDate, ok := parseFormDate(c.FormValue("birth_date")); ok {
		patient.BirthDate = birthDate
	}
	patient.Active = checkboxOn(c.FormValue("active"))

	if err := h.service.UpdatePatient(c.UserContext(), &patient); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Paciente actualizado correctamente.")
	return c.Redirect("/panel/patients", fiber.StatusFound)
}

func (h *PanelPatientHandler) DeletePatient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/patients", fiber.StatusSeeOther)
	}

	if err := h.service.DeletePatient(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Paciente eliminado junto con sus consultas e historial.")
	}
	return c.Redirect("/panel/patients", fiber.StatusSeeOther)
}
