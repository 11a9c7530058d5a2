package models

// Specialty is a medical specialty a physician can hold.
// Deleting a specialty is blocked while any physician references it.
type Specialty struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" form:"name"`
	Description string `gorm:"type:text" json:"description" form:"description"`
}
