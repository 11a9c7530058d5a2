package routes

import (
	api_handlers "saludvital.cl/handlers/api"
	"saludvital.cl/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerApiRoutes mounts the JSON API under /api/v1. Reads are open;
// writes require a logged-in session like the panel.
func registerApiRoutes(app *fiber.App) {
	specialtyHandler := api_handlers.NewApiSpecialtyHandler()
	patientHandler := api_handlers.NewApiPatientHandler()
	physicianHandler := api_handlers.NewApiPhysicianHandler()
	appointmentHandler := api_handlers.NewApiAppointmentHandler()
	treatmentHandler := api_handlers.NewApiTreatmentHandler()
	medicationHandler := api_handlers.NewApiMedicationHandler()
	prescriptionHandler := api_handlers.NewApiPrescriptionHandler()
	historyHandler := api_handlers.NewApiMedicalHistoryHandler()

	api := app.Group("/api/v1")

	api.Get("/specialties", specialtyHandler.ListSpecialties)
	api.Get("/specialties/:id", specialtyHandler.GetSpecialty)
	api.Get("/patients", patientHandler.ListPatients)
	api.Get("/patients/:id", patientHandler.GetPatient)
	api.Get("/physicians", physicianHandler.ListPhysicians)
	api.Get("/physicians/:id", physicianHandler.GetPhysician)
	api.Get("/appointments", appointmentHandler.ListAppointments)
	api.Get("/appointments/:id", appointmentHandler.GetAppointment)
	api.Get("/treatments", treatmentHandler.ListTreatments)
	api.Get("/treatments/:id", treatmentHandler.GetTreatment)
	api.Get("/medications", medicationHandler.ListMedications)
	api.Get("/medications/:id", medicationHandler.GetMedication)
	api.Get("/prescriptions", prescriptionHandler.ListPrescriptions)
	api.Get("/prescriptions/:id", prescriptionHandler.GetPrescription)
	api.Get("/medical-history", historyHandler.ListEvents)
	api.Get("/medical-history/:id", historyHandler.GetEvent)

	writes := api.Group("")
	writes.Use(middlewares.AuthMiddleware)

	writes.Post("/specialties", specialtyHandler.CreateSpecialty)
	writes.Put("/specialties/:id", specialtyHandler.UpdateSpecialty)
	writes.Delete("/specialties/:id", specialtyHandler.DeleteSpecialty)

	writes.Post("/patients", patientHandler.CreatePatient)
	writes.Put("/patients/:id", patientHandler.UpdatePatient)
	writes.Delete("/patients/:id", patientHandler.DeletePatient)

	writes.Post("/physicians", physicianHandler.CreatePhysician)
	writes.Put("/physicians/:id", physicianHandler.UpdatePhysician)
	writes.Delete("/physicians/:id", physicianHandler.DeletePhysician)

	writes.Post("/appointments", appointmentHandler.CreateAppointment)
	writes.Put("/appointments/:id", appointmentHandler.UpdateAppointment)
	writes.Delete("/appointments/:id", appointmentHandler.DeleteAppointment)

	writes.Post("/treatments", treatmentHandler.CreateTreatment)
	writes.Put("/treatments/:id", treatmentHandler.UpdateTreatment)
	writes.Delete("/treatments/:id", treatmentHandler.DeleteTreatment)

	writes.Post("/medications", medicationHandler.CreateMedication)
	writes.Put("/medications/:id", medicationHandler.UpdateMedication)
	writes.Delete("/medications/:id", medicationHandler.DeleteMedication)

	writes.Post("/prescriptions", prescriptionHandler.CreatePrescription)
	writes.Put("/prescriptions/:id", prescriptionHandler.UpdatePrescription)
	writes.Delete("/prescriptions/:id", prescriptionHandler.DeletePrescription)

	writes.Post("/medical-history", historyHandler.CreateEvent)
	writes.Put("/medical-history/:id", historyHandler.UpdateEvent)
	writes.Delete("/medical-history/:id", historyHandler.DeleteEvent)
}
