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

// PanelAppointmentHandler serves the appointment pages of the panel.
type PanelAppointmentHandler struct {
	service          services.IAppointmentService
	patientService   services.IPatientService
	physicianService services.IPhysicianService
}

func NewPanelAppointmentHandler() *PanelAppointmentHandler {
	return &PanelAppointmentHandler{
		service:          services.NewAppointmentService(),
		patientService:   services.NewPatientService(),
		physicianService: services.NewPhysicianService(),
	}
}

// parseFormDateTime reads an HTML datetime-local input, falling back to the
// date-only format.
func parseFormDateTime(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (h *PanelAppointmentHandler) formSelects(c *fiber.Ctx) fiber.Map {
	data := fiber.Map{}
	if patients, err := h.patientService.GetAllPatients(c.UserContext()); err == nil {
		data["Patients"] = patients
	} else {
		configslog.Log.Error("Panel - appointment form patients", zap.Error(err))
	}
	if physicians, err := h.physicianService.GetActivePhysicians(c.UserContext(), 0); err == nil {
		data["Physicians"] = physicians
	} else {
		configslog.Log.Error("Panel - appointment form physicians", zap.Error(err))
	}
	data["States"] = models.AppointmentStates()
	return data
}

func (h *PanelAppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel ListAppointments: query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("scheduled_at")
	}

	filter := repositories.AppointmentFilter{
		PatientID:   uint(c.QueryInt("patient_id")),
		PhysicianID: uint(c.QueryInt("physician_id")),
		State:       models.AppointmentState(c.Query("state")),
	}
	result, err := h.service.GetAppointmentsPaginated(c.UserContext(), params, filter)

	renderData := fiber.Map{
		"Title":  "Consultas",
		"Result": result,
		"Params": params,
		"States": models.AppointmentStates(),
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar las consultas."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Appointment{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Panel - ListAppointments Error", zap.Error(err))
	}
	return renderer.Render(c, "panel/appointments/list", "layouts/panel_layout", renderData, http.StatusOK)
}

func (h *PanelAppointmentHandler) ShowCreateAppointment(c *fiber.Ctx) error {
	renderData := h.formSelects(c)
	renderData["Title"] = "Nueva Consulta"
	return renderer.Render(c, "panel/appointments/create", "layouts/panel_layout", renderData)
}

func (h *PanelAppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect("/panel/appointments/create", fiber.StatusSeeOther)
	}
	if scheduledAt, ok := parseFormDateTime(c.FormValue("scheduled_at")); ok {
		appointment.ScheduledAt = scheduledAt
	}

	if err := h.service.CreateAppointment(c.UserContext(), &appointment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/appointments/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Consulta registrada correctamente.")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

func (h *PanelAppointmentHandler) ShowUpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/appointments")
	}

	appointment, err := h.service.GetAppointmentByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Consulta no encontrada.")
		return c.Redirect("/panel/appointments")
	}

	renderData := h.formSelects(c)
	renderData["Title"] = "Editar Consulta"
	renderData["Appointment"] = appointment
	return renderer.Render(c, "panel/appointments/update", "layouts/panel_layout", renderData)
}

func (h *PanelAppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/appointments")
	}
	redirectPathOnError := fmt.Sprintf("/panel/appointments/update/%d", id)

	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos del formulario inválidos.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}
	appointment.ID = uint(id)
	if scheduledAt, ok := parseFormDateTime(c.FormValue("scheduled_at")); ok {
		appointment.ScheduledAt = scheduledAt
	}

	if err := h.service.UpdateAppointment(c.UserContext(), &appointment); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Consulta actualizada correctamente.")
	return c.Redirect("/panel/appointments", fiber.StatusFound)
}

func (h *PanelAppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Identificador inválido.")
		return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteAppointment(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo eliminar: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Consulta eliminada junto con sus tratamientos y recetas.")
	}
	return c.Redirect("/panel/appointments", fiber.StatusSeeOther)
}
