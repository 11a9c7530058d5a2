package models

import "time"

// BaseModel is embedded by every entity. Deletes are hard deletes so the
// database cascade rules apply; the Active flag on patients, physicians and
// medications is a business flag, not a lifecycle state.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
