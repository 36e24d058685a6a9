package models

import "time"

// MaxUnavailabilityWeeks bounds how far in the future an expected return
// date may be set when a status is first created.
const MaxUnavailabilityWeeks = 12

// UserStatus records a temporary unavailability window for a user.
// The expected-date bounds are enforced by the status form at creation
// only; edits to an existing record skip them.
type UserStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ExpectedDate time.Time `gorm:"not null" json:"expected_date"`
	IsReplaced   bool      `gorm:"default:false" json:"is_replaced"`

	ReplacementRepID *uint `gorm:"index" json:"replacement_rep_id,omitempty"`
	ReplacementRep   *User `gorm:"foreignKey:ReplacementRepID" json:"replacement_rep,omitempty"`
}

// OwnerID returns the user the status belongs to.
func (s *UserStatus) OwnerID() uint {
	return s.UserID
}
