package routes

import (
	panel_handlers "saludvital.cl/handlers/panel"
	"saludvital.cl/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes mounts the HTML admin panel under /panel.
func registerPanelRoutes(app *fiber.App) {
	dashboardHandler := panel_handlers.NewDashboardHandler()
	patientHandler := panel_handlers.NewPanelPatientHandler()
	physicianHandler := panel_handlers.NewPanelPhysicianHandler()
	specialtyHandler := panel_handlers.NewPanelSpecialtyHandler()
	appointmentHandler := panel_handlers.NewPanelAppointmentHandler()
	treatmentHandler := panel_handlers.NewPanelTreatmentHandler()
	medicationHandler := panel_handlers.NewPanelMedicationHandler()
	prescriptionHandler := panel_handlers.NewPanelPrescriptionHandler()
	historyHandler := panel_handlers.NewPanelMedicalHistoryHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	panelGroup.Get("/dashboard", dashboardHandler.ShowDashboard)

	panelGroup.Get("/patients", patientHandler.ListPatients)
	panelGroup.Get("/patients/create", patientHandler.ShowCreatePatient)
	panelGroup.Post("/patients/create", patientHandler.CreatePatient)
	panelGroup.Get("/patients/update/:id", patientHandler.ShowUpdatePatient)
	panelGroup.Post("/patients/update/:id", patientHandler.UpdatePatient)
	panelGroup.Post("/patients/delete/:id", middlewares.RequireAdmin(), patientHandler.DeletePatient)
	panelGroup.Delete("/patients/delete/:id", middlewares.RequireAdmin(), patientHandler.DeletePatient)

	panelGroup.Get("/physicians", physicianHandler.ListPhysicians)
	panelGroup.Get("/physicians/create", physicianHandler.ShowCreatePhysician)
	panelGroup.Post("/physicians/create", physicianHandler.CreatePhysician)
	panelGroup.Get("/physicians/update/:id", physicianHandler.ShowUpdatePhysician)
	panelGroup.Post("/physicians/update/:id", physicianHandler.UpdatePhysician)
	panelGroup.Post("/physicians/delete/:id", physicianHandler.DeletePhysician)
	panelGroup.Delete("/physicians/delete/:id", physicianHandler.DeletePhysician)

	panelGroup.Get("/specialties", specialtyHandler.ListSpecialties)
	panelGroup.Get("/specialties/create", specialtyHandler.ShowCreateSpecialty)
	panelGroup.Post("/specialties/create", specialtyHandler.CreateSpecialty)
	panelGroup.Get("/specialties/update/:id", specialtyHandler.ShowUpdateSpecialty)
	panelGroup.Post("/specialties/update/:id", specialtyHandler.UpdateSpecialty)
	panelGroup.Post("/specialties/delete/:id", specialtyHandler.DeleteSpecialty)
	panelGroup.Delete("/specialties/delete/:id", specialtyHandler.DeleteSpecialty)

	panelGroup.Get("/appointments", appointmentHandler.ListAppointments)
	panelGroup.Get("/appointments/create", appointmentHandler.ShowCreateAppointment)
	panelGroup.Post("/appointments/create", appointmentHandler.CreateAppointment)
	panelGroup.Get("/appointments/update/:id", appointmentHandler.ShowUpdateAppointment)
	panelGroup.Post("/appointments/update/:id", appointmentHandler.UpdateAppointment)
	panelGroup.Post("/appointments/delete/:id", appointmentHandler.DeleteAppointment)
	panelGroup.Delete("/appointments/delete/:id", appointmentHandler.DeleteAppointment)

	panelGroup.Get("/treatments", treatmentHandler.ListTreatments)
	panelGroup.Get("/treatments/create", treatmentHandler.ShowCreateTreatment)
	panelGroup.Post("/treatments/create", treatmentHandler.CreateTreatment)
	panelGroup.Get("/treatments/update/:id", treatmentHandler.ShowUpdateTreatment)
	panelGroup.Post("/treatments/update/:id", treatmentHandler.UpdateTreatment)
	panelGroup.Post("/treatments/delete/:id", treatmentHandler.DeleteTreatment)
	panelGroup.Delete("/treatments/delete/:id", treatmentHandler.DeleteTreatment)

	panelGroup.Get("/medications", medicationHandler.ListMedications)
	panelGroup.Get("/medications/create", medicationHandler.ShowCreateMedication)
	panelGroup.Post("/medications/create", medicationHandler.CreateMedication)
	panelGroup.Get("/medications/update/:id", medicationHandler.ShowUpdateMedication)
	panelGroup.Post("/medications/update/:id", medicationHandler.UpdateMedication)
	panelGroup.Post("/medications/delete/:id", medicationHandler.DeleteMedication)
	panelGroup.Delete("/medications/delete/:id", medicationHandler.DeleteMedication)

	panelGroup.Get("/prescriptions", prescriptionHandler.ListPrescriptions)
	panelGroup.Get("/prescriptions/create", prescriptionHandler.ShowCreatePrescription)
	panelGroup.Post("/prescriptions/create", prescriptionHandler.CreatePrescription)
	panelGroup.Get("/prescriptions/update/:id", prescriptionHandler.ShowUpdatePrescription)
	panelGroup.Post("/prescriptions/update/:id", prescriptionHandler.UpdatePrescription)
	panelGroup.Post("/prescriptions/delete/:id", prescriptionHandler.DeletePrescription)
	panelGroup.Delete("/prescriptions/delete/:id", prescriptionHandler.DeletePrescription)

	panelGroup.Get("/history", historyHandler.ListEvents)
	panelGroup.Get("/history/create", historyHandler.ShowCreateEvent)
	panelGroup.Post("/history/create", historyHandler.CreateEvent)
	panelGroup.Get("/history/update/:id", historyHandler.ShowUpdateEvent)
	panelGroup.Post("/history/update/:id", historyHandler.UpdateEvent)
	panelGroup.Post("/history/delete/:id", historyHandler.DeleteEvent)
	panelGroup.Delete("/history/delete/:id", historyHandler.DeleteEvent)
}
