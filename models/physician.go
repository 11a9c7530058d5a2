package models

import "time"

// Physician is a clinic doctor. The specialty reference is protected:
// a specialty cannot be deleted while a physician holds it.
type Physician struct {
	BaseModel
	RUT         string    `gorm:"column:rut;type:varchar(12);uniqueIndex;not null" json:"rut" form:"rut"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name" form:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name" form:"last_name"`
	Email       string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email" form:"email"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone" form:"phone"`
	Active      bool      `gorm:"default:true;index" json:"active" form:"active"`
	SpecialtyID uint      `gorm:"index;not null" json:"specialty_id" form:"specialty_id"`
	HireDate    time.Time `gorm:"type:date;autoCreateTime" json:"hire_date"`

	Specialty Specialty `gorm:"foreignKey:SpecialtyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"specialty"`
}

// FullName returns "Dr. FirstName LastName".
func (m Physician) FullName() string {
	return "Dr. " + m.FirstName + " " + m.LastName
}
