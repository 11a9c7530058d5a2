package models

import "time"

// BloodType uses the stored codes of the original records (A+, O-, ...).
type BloodType string

const (
	BloodAPositive  BloodType = "A+"
	BloodANegative  BloodType = "A-"
	BloodBPositive  BloodType = "B+"
	BloodBNegative  BloodType = "B-"
	BloodABPositive BloodType = "AB+"
	BloodABNegative BloodType = "AB-"
	BloodOPositive  BloodType = "O+"
	BloodONegative  BloodType = "O-"
)

// BloodTypes lists every valid code, in display order.
func BloodTypes() []BloodType {
	return []BloodType{
		BloodAPositive, BloodANegative,
		BloodBPositive, BloodBNegative,
		BloodABPositive, BloodABNegative,
		BloodOPositive, BloodONegative,
	}
}

// Valid reports whether b is one of the eight known codes.
func (b BloodType) Valid() bool {
	for _, t := range BloodTypes() {
		if b == t {
			return true
		}
	}
	return false
}

// Patient holds personal and medical data of a clinic patient.
type Patient struct {
	BaseModel
	RUT          string    `gorm:"column:rut;type:varchar(12);uniqueIndex;not null" json:"rut" form:"rut"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name" form:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name" form:"last_name"`
	BirthDate    time.Time `gorm:"type:date;not null" json:"birth_date" form:"-"`
	BloodType    BloodType `gorm:"type:varchar(3);not null" json:"blood_type" form:"blood_type"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email" form:"email"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone" form:"phone"`
	Address      string    `gorm:"type:text;not null" json:"address" form:"address"`
	Active       bool      `gorm:"default:true;index" json:"active" form:"active"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
}

// FullName returns "FirstName LastName" for lists and logs.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
