package forms

import (
	"net/url"
	"strings"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
)

// InviteUserForm invites a new user by email. Email uniqueness is
// enforced here, not by the store: a conflicting account that belongs to
// the provisional "Mozillians" group is silently deleted and replaced
// rather than rejected.
type InviteUserForm struct {
	db *gorm.DB

	Email string
}

func NewInviteUserForm(db *gorm.DB) *InviteUserForm {
	return &InviteUserForm{db: db}
}

// Bind reads posted values into the form.
func (f *InviteUserForm) Bind(values url.Values) {
	f.Email = strings.TrimSpace(values.Get("email"))
}

// Validate checks the email and resolves conflicts with existing
// accounts. A conflicting Mozillians account is deleted, never merged.
func (f *InviteUserForm) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("email", f.Email, "Email is required.", v)
	if !v.Empty() {
		return v
	}
	validation.Email("email", f.Email, v)
	if !v.Empty() {
		return v
	}

	var existing models.User
	err := f.db.Preload("Groups").Where("email = ?", f.Email).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return v
	}
	if err != nil {
		v.Add("email", "Could not verify email availability.")
		return v
	}

	if existing.InGroup(models.GroupMozillians) {
		if err := f.db.Select("Groups").Delete(&existing).Error; err != nil {
			v.Add("email", "Could not verify email availability.")
		}
		return v
	}
	v.Add("email", "User already exists.")
	return v
}

// Save creates the invited user in the Rep group with an incomplete
// registration and an empty profile.
func (f *InviteUserForm) Save() (*models.User, error) {
	user := models.User{
		Email:    f.Email,
		Username: models.UsernameFromEmail(f.Email),
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		var rep models.Group
		if err := tx.Where("name = ?", models.GroupRep).First(&rep).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Groups").Append(&rep); err != nil {
			return err
		}
		profile := models.UserProfile{UserID: user.ID}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
