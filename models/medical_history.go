package models

import "time"

// EventType classifies a medical-history entry, with the stored codes of
// the original records.
type EventType string

const (
	EventConsultation EventType = "CONSULTA"
	EventExam         EventType = "EXAMEN"
	EventProcedure    EventType = "PROCEDIMIENTO"
	EventAllergy      EventType = "ALERGIA"
	EventIllness      EventType = "ENFERMEDAD"
	EventTreatment    EventType = "TRATAMIENTO"
	EventOther        EventType = "OTRO"
)

// EventTypes lists every valid code.
func EventTypes() []EventType {
	return []EventType{
		EventConsultation, EventExam, EventProcedure,
		EventAllergy, EventIllness, EventTreatment, EventOther,
	}
}

// Valid reports whether t is one of the seven known codes.
func (t EventType) Valid() bool {
	for _, e := range EventTypes() {
		if t == e {
			return true
		}
	}
	return false
}

// Severity grades a medical-history entry.
type Severity string

const (
	SeverityMild     Severity = "LEVE"
	SeverityModerate Severity = "MODERADO"
	SeveritySerious  Severity = "GRAVE"
	SeverityCritical Severity = "CRITICO"
)

// Severities lists every valid code, mildest first.
func Severities() []Severity {
	return []Severity{SeverityMild, SeverityModerate, SeveritySerious, SeverityCritical}
}

// Valid reports whether s is one of the four known codes.
func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySerious, SeverityCritical:
		return true
	}
	return false
}

// MedicalHistoryEvent is one entry of a patient's clinical history.
// Deleting the patient cascades; deleting the responsible physician only
// nulls the reference.
type MedicalHistoryEvent struct {
	BaseModel
	PatientID    uint      `gorm:"index;not null" json:"patient_id" form:"patient_id"`
	EventAt      time.Time `gorm:"autoCreateTime;index" json:"event_at"`
	EventType    EventType `gorm:"type:varchar(50);not null" json:"event_type" form:"event_type"`
	Description  string    `gorm:"type:text;not null" json:"description" form:"description"`
	PhysicianID  *uint     `gorm:"index" json:"physician_id" form:"physician_id"`
	Severity     Severity  `gorm:"type:varchar(20);default:'LEVE'" json:"severity" form:"severity"`
	Attachment   string    `gorm:"type:varchar(255)" json:"attachment" form:"attachment"`
	Observations string    `gorm:"type:text" json:"observations" form:"observations"`

	Patient   Patient    `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`
	Physician *Physician `gorm:"foreignKey:PhysicianID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"physician,omitempty"`
}
