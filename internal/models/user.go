package models

import (
	"crypto/sha1"
	"encoding/base64"
	"time"
)

// User represents an account in the portal. Email uniqueness is enforced
// by the invite/change forms rather than the store, because a conflicting
// provisional "Mozillians" account is deleted and replaced instead of
// rejected.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Username  string    `gorm:"size:255;not null" json:"username"`
	FirstName string    `gorm:"size:120" json:"first_name"`
	LastName  string    `gorm:"size:120" json:"last_name"`
	Password  string    `gorm:"size:255" json:"-"` // Hashed, never exposed in JSON
	Groups    []Group   `gorm:"many2many:user_groups;" json:"groups,omitempty"`

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// FullName returns "First Last" for display and choice lists.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// InGroup reports membership on an already-preloaded Groups slice.
func (u User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// UsernameFromEmail derives the portal username as the url-safe base64
// of the SHA-1 digest of the email, without padding.
func UsernameFromEmail(email string) string {
	sum := sha1.Sum([]byte(email))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// UserProfile is the one-to-one extension of User with program data.
type UserProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`

	LocalName          string     `gorm:"size:255" json:"local_name,omitempty"`
	BirthDate          *time.Time `json:"birth_date,omitempty"`
	City               string     `gorm:"size:100" json:"city,omitempty"`
	Region             string     `gorm:"size:100" json:"region,omitempty"`
	Country            string     `gorm:"size:100" json:"country,omitempty"`
	Lat                float64    `json:"lat,omitempty"`
	Lon                float64    `json:"lon,omitempty"`
	DisplayName        string     `gorm:"size:100" json:"display_name,omitempty"`
	PrivateEmail       string     `gorm:"size:255" json:"private_email,omitempty"`
	Gender             string     `gorm:"size:20" json:"gender,omitempty"`
	Bio                string     `gorm:"size:2000" json:"bio,omitempty"`
	Timezone           string     `gorm:"size:80" json:"timezone,omitempty"`
	MozilliansURL      string     `gorm:"size:300" json:"mozillians_profile_url,omitempty"`
	TwitterAccount     string     `gorm:"size:80" json:"twitter_account,omitempty"`
	JabberID           string     `gorm:"size:120" json:"jabber_id,omitempty"`
	IRCName            string     `gorm:"size:80" json:"irc_name,omitempty"`
	IRCChannels        string     `gorm:"size:300" json:"irc_channels,omitempty"`
	FacebookURL        string     `gorm:"size:300" json:"facebook_url,omitempty"`
	LinkedInURL        string     `gorm:"size:300" json:"linkedin_url,omitempty"`
	DiasporaURL        string     `gorm:"size:300" json:"diaspora_url,omitempty"`
	PersonalWebsiteURL string     `gorm:"size:300" json:"personal_website_url,omitempty"`
	PersonalBlogFeed   string     `gorm:"size:300" json:"personal_blog_feed,omitempty"`
	WikiProfileURL     string     `gorm:"size:300" json:"wiki_profile_url,omitempty"`

	// MentorID is required for active Reps; Alumni have it cleared.
	MentorID *uint `gorm:"index" json:"mentor_id,omitempty"`
	Mentor   *User `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`

	FunctionalAreas []FunctionalArea `gorm:"many2many:profile_functional_areas;" json:"functional_areas,omitempty"`

	RegistrationComplete bool       `gorm:"default:false" json:"registration_complete"`
	DateJoinedProgram    *time.Time `json:"date_joined_program,omitempty"`
	DateLeftProgram      *time.Time `json:"date_left_program,omitempty"`
	IsRotmNominee        bool       `gorm:"default:false" json:"is_rotm_nominee"`
}

// OwnerID returns the user the profile belongs to.
func (p *UserProfile) OwnerID() uint {
	return p.UserID
}
