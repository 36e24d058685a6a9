package models

import "time"

// FeaturedRep is a promotional article highlighting a representative.
// Deletes are hard deletes; there is no draft/published distinction
// beyond existence.
type FeaturedRep struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
}
