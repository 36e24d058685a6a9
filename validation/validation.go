// Package validation collects form violations keyed by field name.
// Each violation carries the user-facing message rendered next to the field.
package validation

import (
	"net/mail"
	"regexp"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records a violation unless the field already has one.
// First error per field wins, matching field-by-field validation order.
func (v Violations) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// latinName allows Latin letters (both cases), spaces and the character '.
var latinName = regexp.MustCompile(`^[A-Za-z' ]+$`)

// Basic validators
func Required(field, value, message string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, message)
	}
}

// LatinName ensures the value contains only Latin letters, apostrophes
// and spaces.
func LatinName(field, value string, v Violations) {
	if !latinName.MatchString(value) {
		v.Add(field, "Please use only Latin characters.")
	}
}

// Email ensures the value parses as a plain address (no display name).
func Email(field, value string, v Violations) {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.Add(field, "Enter a valid email address.")
	}
}

// OneOf ensures the value is a member of the allowed choice list.
func OneOf(field, value string, choices []string, message string, v Violations) {
	for _, c := range choices {
		if c == value {
			return
		}
	}
	v.Add(field, message)
}
