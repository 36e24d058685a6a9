// Package forms binds POSTed values, runs field and cross-field
// validation, and persists the underlying records. Each form mirrors
// one page of the portal: invite, account details, profile, program
// dates, availability status.
package forms

import "time"

// dateFormat is the display format used in date fields and messages.
const dateFormat = "02 January 2006"

// leavingSOPURL points to the policy documentation referenced when an
// unavailability period exceeds the allowed maximum.
const leavingSOPURL = "https://wiki.mozilla.org/ReMo/SOPs/Leaving"

// today returns the current date truncated to midnight local time.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
