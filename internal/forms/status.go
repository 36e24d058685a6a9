package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
)

// UserStatusForm declares or edits a temporary-unavailability window.
// The expected-date bounds apply on first creation only; editing an
// existing record skips them. Replacement candidates are Reps with
// completed registration, excluding the subject.
type UserStatusForm struct {
	db     *gorm.DB
	Status *models.UserStatus

	ExpectedDateRaw string
	IsReplaced      bool
	ReplacementRaw  string

	ReplacementChoices []models.User

	expectedDate  time.Time
	replacementID *uint
}

func NewUserStatusForm(db *gorm.DB, status *models.UserStatus) (*UserStatusForm, error) {
	reps, err := registeredGroupMembers(db, models.GroupRep, status.UserID)
	if err != nil {
		return nil, err
	}
	f := &UserStatusForm{
		db:                 db,
		Status:             status,
		ReplacementChoices: reps,
		IsReplaced:         status.IsReplaced,
	}
	if !status.ExpectedDate.IsZero() {
		f.ExpectedDateRaw = status.ExpectedDate.Format(dateFormat)
	}
	if status.ReplacementRepID != nil {
		f.ReplacementRaw = strconv.FormatUint(uint64(*status.ReplacementRepID), 10)
	}
	return f, nil
}

// Bind reads posted values into the form.
func (f *UserStatusForm) Bind(values url.Values) {
	f.ExpectedDateRaw = values.Get("expected_date")
	f.IsReplaced = values.Get("is_replaced") == "True" || values.Get("is_replaced") == "on"
	f.ReplacementRaw = values.Get("replacement_rep")
}

// Validate parses the expected return date and enforces the creation
// bounds and the replacement requirement.
func (f *UserStatusForm) Validate() validation.Violations {
	v := make(validation.Violations)

	// Parse in local time so the bounds below compare calendar days in
	// the same location as today().
	expected, err := time.ParseInLocation(dateFormat, f.ExpectedDateRaw, time.Local)
	if err != nil {
		v.Add("expected_date", "Enter a valid date.")
	} else {
		f.expectedDate = expected
	}

	// Bounds are checked only when the record does not exist yet.
	if f.Status.ID == 0 && err == nil {
		tomorrow := today().AddDate(0, 0, 1)
		maxDate := today().AddDate(0, 0, 7*models.MaxUnavailabilityWeeks)
		if expected.Before(tomorrow) {
			v.Add("expected_date", fmt.Sprintf(
				"Return day cannot be earlier than %s", tomorrow.Format(dateFormat)))
		}
		if expected.After(maxDate) {
			v.Add("expected_date", fmt.Sprintf(
				"The maximum period for unavailability is until %s. "+
					"For more information please check the %s Leaving SOP",
				maxDate.Format(dateFormat), leavingSOPURL))
		}
	}

	f.replacementID = nil
	if f.ReplacementRaw != "" && f.ReplacementRaw != "None" {
		id64, perr := strconv.ParseUint(f.ReplacementRaw, 10, 64)
		if perr != nil {
			v.Add("replacement_rep", "Select a valid choice.")
		} else {
			found := false
			for _, r := range f.ReplacementChoices {
				if r.ID == uint(id64) {
					found = true
					id := uint(id64)
					f.replacementID = &id
					break
				}
			}
			if !found {
				v.Add("replacement_rep", "Select a valid choice.")
			}
		}
	}

	if f.IsReplaced && f.replacementID == nil {
		v.Add("replacement_rep", "Please select a replacement Rep during your absence.")
	}
	return v
}

// Save creates or updates the status record.
func (f *UserStatusForm) Save() error {
	f.Status.ExpectedDate = f.expectedDate
	f.Status.IsReplaced = f.IsReplaced
	f.Status.ReplacementRepID = f.replacementID
	return f.db.Save(f.Status).Error
}
