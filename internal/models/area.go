package models

import "time"

// FunctionalArea is a tag describing a field a Rep contributes to.
type FunctionalArea struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Active    bool      `gorm:"default:true" json:"active"`
}
