package models

// User is a panel account. Writes through both the panel and the API are
// gated behind a logged-in user.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name" form:"name"`
	Email        string `gorm:"type:varchar(254);uniqueIndex;not null" json:"email" form:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-" form:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
	Active       bool   `gorm:"default:true" json:"active"`
}
