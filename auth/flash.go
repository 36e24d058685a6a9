package auth

import (
	"crypto/hmac"
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "flash"

// Flash stores a one-shot notification in a signed cookie. The message
// survives exactly one redirect and is consumed by PopFlash on the next
// render. Same signing scheme as the session cookie.
func Flash(w http.ResponseWriter, message string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded + "." + sign(encoded),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears the cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) (string, bool) {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})

	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return "", false
	}
	encoded, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(sign(encoded))) {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	return string(raw), true
}
