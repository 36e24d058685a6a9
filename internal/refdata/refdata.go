// Package refdata holds static reference datasets consumed by the
// profile forms: region names and common timezone identifiers. The
// lists are fixed at build time and returned sorted for choice lists.
package refdata

import "sort"

// Countries returns the region list in display order.
func Countries() []string {
	out := make([]string, len(countries))
	copy(out, countries)
	sort.Strings(out)
	return out
}

// Timezones returns the common timezone identifiers.
func Timezones() []string {
	out := make([]string, len(timezones))
	copy(out, timezones)
	return out
}

// ValidCountry reports whether name is a known region.
func ValidCountry(name string) bool {
	for _, c := range countries {
		if c == name {
			return true
		}
	}
	return false
}

// ValidTimezone reports whether tz is a known timezone identifier.
func ValidTimezone(tz string) bool {
	for _, t := range timezones {
		if t == tz {
			return true
		}
	}
	return false
}

var countries = []string{
	"Afghanistan", "Albania", "Algeria", "Argentina", "Armenia",
	"Australia", "Austria", "Bangladesh", "Belarus", "Belgium",
	"Bolivia", "Bosnia and Herzegovina", "Brazil", "Bulgaria",
	"Cameroon", "Canada", "Chile", "China", "Colombia", "Costa Rica",
	"Croatia", "Cuba", "Cyprus", "Czech Republic", "Denmark",
	"Dominican Republic", "Ecuador", "Egypt", "El Salvador", "Estonia",
	"Ethiopia", "Finland", "France", "Georgia", "Germany", "Ghana",
	"Greece", "Guatemala", "Honduras", "Hungary", "Iceland", "India",
	"Indonesia", "Iran", "Iraq", "Ireland", "Israel", "Italy",
	"Ivory Coast", "Japan", "Jordan", "Kenya", "Kosovo", "Latvia",
	"Lebanon", "Lithuania", "Luxembourg", "Macedonia", "Madagascar",
	"Malaysia", "Mali", "Malta", "Mauritius", "Mexico", "Moldova",
	"Montenegro", "Morocco", "Myanmar", "Nepal", "Netherlands",
	"New Zealand", "Nicaragua", "Nigeria", "Norway", "Pakistan",
	"Panama", "Paraguay", "Peru", "Philippines", "Poland", "Portugal",
	"Romania", "Russia", "Rwanda", "Senegal", "Serbia", "Singapore",
	"Slovakia", "Slovenia", "South Africa", "South Korea", "Spain",
	"Sri Lanka", "Sweden", "Switzerland", "Taiwan", "Tanzania",
	"Thailand", "Tunisia", "Turkey", "Uganda", "Ukraine",
	"United Arab Emirates", "United Kingdom", "United States",
	"Uruguay", "Venezuela", "Vietnam", "Zambia", "Zimbabwe",
}

var timezones = []string{
	"Africa/Abidjan", "Africa/Accra", "Africa/Cairo",
	"Africa/Casablanca", "Africa/Johannesburg", "Africa/Lagos",
	"Africa/Nairobi", "Africa/Tunis", "America/Argentina/Buenos_Aires",
	"America/Bogota", "America/Caracas", "America/Chicago",
	"America/Denver", "America/Guatemala", "America/Lima",
	"America/Los_Angeles", "America/Mexico_City", "America/New_York",
	"America/Santiago", "America/Sao_Paulo", "America/Toronto",
	"Asia/Bangkok", "Asia/Beirut", "Asia/Colombo", "Asia/Dhaka",
	"Asia/Dubai", "Asia/Hong_Kong", "Asia/Jakarta", "Asia/Jerusalem",
	"Asia/Karachi", "Asia/Kathmandu", "Asia/Kolkata",
	"Asia/Kuala_Lumpur", "Asia/Manila", "Asia/Seoul", "Asia/Shanghai",
	"Asia/Singapore", "Asia/Taipei", "Asia/Tehran", "Asia/Tokyo",
	"Asia/Yangon", "Atlantic/Reykjavik", "Australia/Melbourne",
	"Australia/Perth", "Australia/Sydney", "Europe/Amsterdam",
	"Europe/Athens", "Europe/Belgrade", "Europe/Berlin",
	"Europe/Brussels", "Europe/Bucharest", "Europe/Budapest",
	"Europe/Dublin", "Europe/Helsinki", "Europe/Istanbul",
	"Europe/Kiev", "Europe/Lisbon", "Europe/London", "Europe/Madrid",
	"Europe/Moscow", "Europe/Oslo", "Europe/Paris", "Europe/Prague",
	"Europe/Rome", "Europe/Sofia", "Europe/Stockholm", "Europe/Vienna",
	"Europe/Warsaw", "Europe/Zurich", "Pacific/Auckland", "UTC",
}
