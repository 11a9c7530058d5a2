package models

import "time"

// Prescription links one medication to one treatment with dosage
// instructions. The (treatment, medication) pair is unique; deleting either
// side cascades to the prescription.
type Prescription struct {
	BaseModel
	TreatmentID  uint      `gorm:"not null;uniqueIndex:idx_prescription_pair" json:"treatment_id" form:"treatment_id"`
	MedicationID uint      `gorm:"not null;uniqueIndex:idx_prescription_pair" json:"medication_id" form:"medication_id"`
	Dose         string    `gorm:"type:varchar(50);not null" json:"dose" form:"dose"`
	Frequency    string    `gorm:"type:varchar(100);not null" json:"frequency" form:"frequency"`
	Duration     string    `gorm:"type:varchar(50);not null" json:"duration" form:"duration"`
	PrescribedAt time.Time `gorm:"autoCreateTime" json:"prescribed_at"`

	Treatment  Treatment  `gorm:"foreignKey:TreatmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"treatment"`
	Medication Medication `gorm:"foreignKey:MedicationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"medication"`
}
