package services

import (
	"context"

	"saludvital.cl/configs/configslog"
	"saludvital.cl/models"
	"saludvital.cl/repositories"

	"go.uber.org/zap"
)

// DashboardStats aggregates the panel home-page counters.
type DashboardStats struct {
	TotalPatients      int64
	ActivePhysicians   int64
	TotalSpecialties   int64
	TotalAppointments  int64
	AppointmentsToday  int64
	TotalTreatments    int64
	TotalPrescriptions int64
	LowStockCount      int64

	RecentAppointments []models.Appointment
	PhysiciansOnDuty   []models.Physician
}

// IDashboardService builds the panel overview.
type IDashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type DashboardService struct {
	patientRepo      repositories.IPatientRepository
	physicianRepo    repositories.IPhysicianRepository
	specialtyRepo    repositories.ISpecialtyRepository
	appointmentRepo  repositories.IAppointmentRepository
	treatmentRepo    repositories.ITreatmentRepository
	prescriptionRepo repositories.IPrescriptionRepository
	medicationRepo   repositories.IMedicationRepository
}

func NewDashboardService() IDashboardService {
	return &DashboardService{
		patientRepo:      repositories.NewPatientRepository(),
		physicianRepo:    repositories.NewPhysicianRepository(),
		specialtyRepo:    repositories.NewSpecialtyRepository(),
		appointmentRepo:  repositories.NewAppointmentRepository(),
		treatmentRepo:    repositories.NewTreatmentRepository(),
		prescriptionRepo: repositories.NewPrescriptionRepository(),
		medicationRepo:   repositories.NewMedicationRepository(),
	}
}

const dashboardListLimit = 5

// GetStats gathers the counters and the two short lists shown on the panel
// home page. The first repository error aborts the whole build.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counters := []struct {
		dst  *int64
		load func(context.Context) (int64, error)
	}{
		{&stats.TotalPatients, s.patientRepo.Count},
		{&stats.ActivePhysicians, s.physicianRepo.CountActive},
		{&stats.TotalSpecialties, s.specialtyRepo.Count},
		{&stats.TotalAppointments, s.appointmentRepo.Count},
		{&stats.AppointmentsToday, s.appointmentRepo.CountToday},
		{&stats.TotalTreatments, s.treatmentRepo.Count},
		{&stats.TotalPrescriptions, s.prescriptionRepo.Count},
		{&stats.LowStockCount, s.medicationRepo.CountLowStock},
	}
	for _, c := range counters {
		n, err := c.load(ctx)
		if err != nil {
			configslog.Log.Error("GetStats: counter failed", zap.Error(err))
			return nil, err
		}
		*c.dst = n
	}

	recent, err := s.appointmentRepo.FindRecent(ctx, dashboardListLimit)
	if err != nil {
		configslog.Log.Error("GetStats: recent appointments failed", zap.Error(err))
		return nil, err
	}
	stats.RecentAppointments = recent

	onDuty, err := s.physicianRepo.FindAllActive(ctx, dashboardListLimit)
	if err != nil {
		configslog.Log.Error("GetStats: active physicians failed", zap.Error(err))
		return nil, err
	}
	stats.PhysiciansOnDuty = onDuty

	return stats, nil
}

var _ IDashboardService = (*DashboardService)(nil)
