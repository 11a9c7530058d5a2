package models

import "time"

// AppointmentState uses the four stored codes of the original records.
// No transition graph is enforced: any state may be set from any other.
type AppointmentState string

const (
	StateScheduled  AppointmentState = "PROG"
	StateInProgress AppointmentState = "CURS"
	StateCompleted  AppointmentState = "COMP"
	StateCancelled  AppointmentState = "CANC"
)

// AppointmentStates lists every valid code.
func AppointmentStates() []AppointmentState {
	return []AppointmentState{StateScheduled, StateInProgress, StateCompleted, StateCancelled}
}

// Valid reports whether s is one of the four known codes.
func (s AppointmentState) Valid() bool {
	switch s {
	case StateScheduled, StateInProgress, StateCompleted, StateCancelled:
		return true
	}
	return false
}

// Label returns the human-readable name for panel views.
func (s AppointmentState) Label() string {
	switch s {
	case StateScheduled:
		return "Programada"
	case StateInProgress:
		return "En Curso"
	case StateCompleted:
		return "Completada"
	case StateCancelled:
		return "Cancelada"
	}
	return string(s)
}

// Appointment records a medical visit of a patient with a physician.
// Deleting the patient or the physician cascades to the appointment.
type Appointment struct {
	BaseModel
	PatientID   uint             `gorm:"index;not null" json:"patient_id" form:"patient_id"`
	PhysicianID uint             `gorm:"index;not null" json:"physician_id" form:"physician_id"`
	ScheduledAt time.Time        `gorm:"index;not null" json:"scheduled_at" form:"-"`
	Reason      string           `gorm:"type:text;not null" json:"reason" form:"reason"`
	Diagnosis   string           `gorm:"type:text" json:"diagnosis" form:"diagnosis"`
	State       AppointmentState `gorm:"type:varchar(4);default:'PROG';index" json:"state" form:"state"`

	Patient   Patient   `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`
	Physician Physician `gorm:"foreignKey:PhysicianID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"physician"`
}
