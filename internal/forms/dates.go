package forms

import (
	"net/url"
	"time"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
)

const isoDate = "2006-01-02"

// ChangeDatesForm edits the dates a user joined and left the program.
// The left-date is a denormalization maintained at save time: Alumni get
// today when the caller did not explicitly change it; everyone else has
// it cleared regardless of input.
type ChangeDatesForm struct {
	db      *gorm.DB
	Profile *models.UserProfile
	user    *models.User

	DateJoinedRaw string
	DateLeftRaw   string

	dateJoined  *time.Time
	dateLeft    *time.Time
	leftChanged bool
}

// NewChangeDatesForm needs the owning user with Groups preloaded.
func NewChangeDatesForm(db *gorm.DB, user *models.User, profile *models.UserProfile) *ChangeDatesForm {
	f := &ChangeDatesForm{db: db, Profile: profile, user: user}
	if profile.DateJoinedProgram != nil {
		f.DateJoinedRaw = profile.DateJoinedProgram.Format(isoDate)
	}
	if profile.DateLeftProgram != nil {
		f.DateLeftRaw = profile.DateLeftProgram.Format(isoDate)
	}
	return f
}

// Bind reads posted values and records whether the left-date was
// explicitly changed from the stored value.
func (f *ChangeDatesForm) Bind(values url.Values) {
	f.DateJoinedRaw = values.Get("date_joined_program")

	previous := ""
	if f.Profile.DateLeftProgram != nil {
		previous = f.Profile.DateLeftProgram.Format(isoDate)
	}
	f.DateLeftRaw = values.Get("date_left_program")
	f.leftChanged = f.DateLeftRaw != previous
}

// Validate parses both dates; empty values are allowed.
func (f *ChangeDatesForm) Validate() validation.Violations {
	v := make(validation.Violations)

	f.dateJoined = parseOptionalDate("date_joined_program", f.DateJoinedRaw, v)
	f.dateLeft = parseOptionalDate("date_left_program", f.DateLeftRaw, v)
	return v
}

func parseOptionalDate(field, raw string, v validation.Violations) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(isoDate, raw)
	if err != nil {
		v.Add(field, "Enter a valid date.")
		return nil
	}
	return &t
}

// Save applies the dates with the Alumni overwrite rule.
func (f *ChangeDatesForm) Save() error {
	f.Profile.DateJoinedProgram = f.dateJoined
	f.Profile.DateLeftProgram = f.dateLeft

	if f.user.InGroup(models.GroupAlumni) {
		if !f.leftChanged {
			d := today()
			f.Profile.DateLeftProgram = &d
		}
	} else {
		f.Profile.DateLeftProgram = nil
	}
	return f.db.Save(f.Profile).Error
}
