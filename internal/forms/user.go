package forms

import (
	"net/url"
	"strings"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
)

const emailTakenMessage = "Email already exists. You probably used this email to " +
	"sign in as a 'mozillian' into the portal. " +
	"Please send an email to " +
	"https://lists.mozilla.org/listinfo/reps-webdev " +
	"to get help."

// ChangeUserForm edits the account identity fields: first name, last
// name and email. Name fields accept only Latin letters, apostrophes
// and spaces. The username hash is recomputed from the email on save.
type ChangeUserForm struct {
	db   *gorm.DB
	User *models.User

	FirstName string
	LastName  string
	Email     string
}

func NewChangeUserForm(db *gorm.DB, user *models.User) *ChangeUserForm {
	return &ChangeUserForm{
		db:        db,
		User:      user,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// Bind reads posted values into the form.
func (f *ChangeUserForm) Bind(values url.Values) {
	f.FirstName = strings.TrimSpace(values.Get("first_name"))
	f.LastName = strings.TrimSpace(values.Get("last_name"))
	f.Email = strings.TrimSpace(values.Get("email"))
}

// Validate checks names and re-checks email uniqueness excluding the
// record's own current value.
func (f *ChangeUserForm) Validate() validation.Violations {
	v := make(validation.Violations)

	validation.LatinName("first_name", f.FirstName, v)
	validation.LatinName("last_name", f.LastName, v)

	validation.Required("email", f.Email, "Email is required.", v)
	if _, taken := v["email"]; !taken && f.Email != "" {
		validation.Email("email", f.Email, v)
	}
	if _, taken := v["email"]; !taken {
		var count int64
		f.db.Model(&models.User{}).
			Where("email = ?", f.Email).
			Where("email <> ?", f.User.Email).
			Count(&count)
		if count > 0 {
			v.Add("email", emailTakenMessage)
		}
	}
	return v
}

// Save applies the changes and recomputes the derived username.
func (f *ChangeUserForm) Save() error {
	f.User.FirstName = f.FirstName
	f.User.LastName = f.LastName
	f.User.Email = f.Email
	f.User.Username = models.UsernameFromEmail(f.Email)
	return f.db.Save(f.User).Error
}
