// Package i18n provides a tiny translation catalog for template chrome.
// Form validation messages are full sentences produced by the forms
// themselves; this catalog only covers shared UI labels.
package i18n

import (
	"context"
	"strings"
)

const defaultLang = "en"

type langKey struct{}

// WithLang stores the resolved language in the request context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFromContext returns the language from context, defaulting to "en".
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	return defaultLang
}

// DetectLanguage picks the primary language tag from an Accept-Language
// header value. Unknown or empty input falls back to the default.
func DetectLanguage(acceptLanguage string) string {
	s := strings.TrimSpace(strings.ToLower(acceptLanguage))
	if s == "" {
		return defaultLang
	}
	// First tag, before any quality parameters.
	if i := strings.IndexAny(s, ",;"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "-"); i >= 0 {
		s = s[:i]
	}
	if _, ok := catalog[s]; ok {
		return s
	}
	return defaultLang
}

// T translates a message code for the given language. Unknown codes
// return the code itself; unknown languages fall back to the default.
func T(lang, code string) string {
	if msgs, ok := catalog[lang]; ok {
		if msg, ok := msgs[code]; ok {
			return msg
		}
	}
	if msg, ok := catalog[defaultLang][code]; ok {
		return msg
	}
	return code
}

var catalog = map[string]map[string]string{
	"en": {
		"app.title":           "Reps Portal",
		"nav.dashboard":       "Dashboard",
		"nav.featured":        "Featured Reps",
		"nav.profile":         "My Profile",
		"nav.invite":          "Invite",
		"nav.login":           "Sign in",
		"nav.logout":          "Sign out",
		"featured.title":      "Featured Rep articles",
		"featured.new":        "New article",
		"featured.edit":       "Edit article",
		"featured.delete":     "Delete",
		"profile.edit":        "Edit profile",
		"profile.dates":       "Program dates",
		"status.title":        "Availability status",
		"status.unavailable":  "Currently unavailable",
		"form.save":           "Save",
		"form.cancel":         "Cancel",
		"required":            "Required",
	},
	"el": {
		"nav.dashboard": "Πίνακας",
		"nav.login":     "Σύνδεση",
		"nav.logout":    "Αποσύνδεση",
		"form.save":     "Αποθήκευση",
		"form.cancel":   "Ακύρωση",
		"required":      "Υποχρεωτικό",
	},
}
