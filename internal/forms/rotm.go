package forms

import (
	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/models"
)

// RotmNomineeForm nominates a Rep of the month. The flag only ever flips
// from false to true; an already-nominated profile is left untouched.
type RotmNomineeForm struct {
	db      *gorm.DB
	Profile *models.UserProfile
}

func NewRotmNomineeForm(db *gorm.DB, profile *models.UserProfile) *RotmNomineeForm {
	return &RotmNomineeForm{db: db, Profile: profile}
}

// Save flips the nomination flag if not already set. Returns true when a
// nomination was recorded.
func (f *RotmNomineeForm) Save() (bool, error) {
	if f.Profile.IsRotmNominee {
		return false, nil
	}
	f.Profile.IsRotmNominee = true
	if err := f.db.Model(f.Profile).Update("is_rotm_nominee", true).Error; err != nil {
		return false, err
	}
	return true, nil
}
