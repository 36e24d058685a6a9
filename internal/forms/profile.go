package forms

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/internal/refdata"
	"github.com/pemmasanikrishna/remo/validation"
)

// registeredGroupMembers returns users in the named group whose profile
// registration is complete, ordered by first name for choice lists.
// excludeID removes the subject from their own candidate list.
func registeredGroupMembers(db *gorm.DB, group string, excludeID uint) ([]models.User, error) {
	var users []models.User
	q := db.
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN groups g ON g.id = ug.group_id AND g.name = ?", group).
		Joins("JOIN user_profiles up ON up.user_id = users.id AND up.registration_complete = ?", true).
		Order("users.first_name")
	if excludeID != 0 {
		q = q.Where("users.id <> ?", excludeID)
	}
	err := q.Find(&users).Error
	return users, err
}

// ChangeProfileForm edits the extended profile. Mentor candidates and
// the country/timezone choice lists are resolved at construction time,
// as is the subject's Alumni standing: it comes from actual group
// membership and is never read from posted values.
type ChangeProfileForm struct {
	db      *gorm.DB
	Profile *models.UserProfile

	LocalName          string
	City               string
	Region             string
	Country            string
	DisplayName        string
	PrivateEmail       string
	Gender             string
	Bio                string
	Timezone           string
	MozilliansURL      string
	TwitterAccount     string
	JabberID           string
	IRCName            string
	IRCChannels        string
	FacebookURL        string
	LinkedInURL        string
	DiasporaURL        string
	PersonalWebsiteURL string
	PersonalBlogFeed   string
	WikiProfileURL     string

	MentorRaw   string
	AlumniGroup bool
	AreaIDs     []uint

	MentorChoices   []models.User
	CountryChoices  []string
	TimezoneChoices []string

	mentorID *uint
}

func NewChangeProfileForm(db *gorm.DB, user *models.User) (*ChangeProfileForm, error) {
	mentors, err := registeredGroupMembers(db, models.GroupMentor, 0)
	if err != nil {
		return nil, err
	}
	profile := user.Profile
	f := &ChangeProfileForm{
		db:              db,
		Profile:         profile,
		AlumniGroup:     user.InGroup(models.GroupAlumni),
		MentorChoices:   mentors,
		CountryChoices:  refdata.Countries(),
		TimezoneChoices: refdata.Timezones(),

		LocalName:          profile.LocalName,
		City:               profile.City,
		Region:             profile.Region,
		Country:            profile.Country,
		DisplayName:        profile.DisplayName,
		PrivateEmail:       profile.PrivateEmail,
		Gender:             profile.Gender,
		Bio:                profile.Bio,
		Timezone:           profile.Timezone,
		MozilliansURL:      profile.MozilliansURL,
		TwitterAccount:     profile.TwitterAccount,
		JabberID:           profile.JabberID,
		IRCName:            profile.IRCName,
		IRCChannels:        profile.IRCChannels,
		FacebookURL:        profile.FacebookURL,
		LinkedInURL:        profile.LinkedInURL,
		DiasporaURL:        profile.DiasporaURL,
		PersonalWebsiteURL: profile.PersonalWebsiteURL,
		PersonalBlogFeed:   profile.PersonalBlogFeed,
		WikiProfileURL:     profile.WikiProfileURL,
	}
	if profile.MentorID != nil {
		f.MentorRaw = strconv.FormatUint(uint64(*profile.MentorID), 10)
	}
	return f, nil
}

// Bind reads posted values into the form.
func (f *ChangeProfileForm) Bind(values url.Values) {
	f.LocalName = values.Get("local_name")
	f.City = values.Get("city")
	f.Region = values.Get("region")
	f.Country = values.Get("country")
	f.DisplayName = values.Get("display_name")
	f.PrivateEmail = values.Get("private_email")
	f.Gender = values.Get("gender")
	f.Bio = values.Get("bio")
	f.Timezone = values.Get("timezone")
	f.MozilliansURL = values.Get("mozillians_profile_url")
	f.TwitterAccount = values.Get("twitter_account")
	f.JabberID = values.Get("jabber_id")
	f.IRCName = values.Get("irc_name")
	f.IRCChannels = values.Get("irc_channels")
	f.FacebookURL = values.Get("facebook_url")
	f.LinkedInURL = values.Get("linkedin_url")
	f.DiasporaURL = values.Get("diaspora_url")
	f.PersonalWebsiteURL = values.Get("personal_website_url")
	f.PersonalBlogFeed = values.Get("personal_blog_feed")
	f.WikiProfileURL = values.Get("wiki_profile_url")
	f.MentorRaw = values.Get("mentor")

	f.AreaIDs = f.AreaIDs[:0]
	for _, raw := range values["functional_areas"] {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			f.AreaIDs = append(f.AreaIDs, uint(id))
		}
	}
}

// Validate normalizes the twitter handle, checks the country/timezone
// choices and resolves the mentor selection. Alumni skip the mentor
// requirement and have the field forced empty.
func (f *ChangeProfileForm) Validate() validation.Violations {
	v := make(validation.Violations)

	// A leading '@' is a display convention, not part of the handle.
	f.TwitterAccount = strings.TrimLeft(f.TwitterAccount, "@")

	validation.Required("country", f.Country, "Please select one option from the list.", v)
	if _, bad := v["country"]; !bad && !refdata.ValidCountry(f.Country) {
		v.Add("country", "Please select one option from the list.")
	}
	if f.Timezone != "" && !refdata.ValidTimezone(f.Timezone) {
		v.Add("timezone", "Please select one option from the list.")
	}

	f.mentorID = nil
	if f.AlumniGroup {
		return v
	}
	if f.MentorRaw == "" || f.MentorRaw == "None" {
		v.Add("mentor", "Please select a mentor.")
		return v
	}
	id64, err := strconv.ParseUint(f.MentorRaw, 10, 64)
	if err != nil {
		v.Add("mentor", "Please select a mentor.")
		return v
	}
	for _, m := range f.MentorChoices {
		if m.ID == uint(id64) {
			id := uint(id64)
			f.mentorID = &id
			return v
		}
	}
	v.Add("mentor", "Please select a mentor.")
	return v
}

// Save applies the bound fields and replaces the functional areas.
func (f *ChangeProfileForm) Save() error {
	p := f.Profile
	p.LocalName = f.LocalName
	p.City = f.City
	p.Region = f.Region
	p.Country = f.Country
	p.DisplayName = f.DisplayName
	p.PrivateEmail = f.PrivateEmail
	p.Gender = f.Gender
	p.Bio = f.Bio
	p.Timezone = f.Timezone
	p.MozilliansURL = f.MozilliansURL
	p.TwitterAccount = f.TwitterAccount
	p.JabberID = f.JabberID
	p.IRCName = f.IRCName
	p.IRCChannels = f.IRCChannels
	p.FacebookURL = f.FacebookURL
	p.LinkedInURL = f.LinkedInURL
	p.DiasporaURL = f.DiasporaURL
	p.PersonalWebsiteURL = f.PersonalWebsiteURL
	p.PersonalBlogFeed = f.PersonalBlogFeed
	p.WikiProfileURL = f.WikiProfileURL
	p.MentorID = f.mentorID

	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if f.AreaIDs == nil {
			return nil
		}
		var areas []models.FunctionalArea
		if len(f.AreaIDs) > 0 {
			if err := tx.Where("id IN ?", f.AreaIDs).Find(&areas).Error; err != nil {
				return err
			}
		}
		return tx.Model(p).Association("FunctionalAreas").Replace(areas)
	})
}
