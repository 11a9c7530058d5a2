package models

import "time"

// Treatment is a course of care prescribed during an appointment.
// Deleting the appointment cascades to its treatments.
type Treatment struct {
	BaseModel
	AppointmentID uint      `gorm:"index;not null" json:"appointment_id" form:"appointment_id"`
	Description   string    `gorm:"type:text;not null" json:"description" form:"description"`
	DurationDays  int       `gorm:"not null" json:"duration_days" form:"duration_days"`
	Observations  string    `gorm:"type:text" json:"observations" form:"observations"`
	StartDate     time.Time `gorm:"type:date;autoCreateTime" json:"start_date"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`
}
