package forms

import (
	"net/url"
	"testing"

	"github.com/pemmasanikrishna/remo/internal/models"
)

func TestChangeUserRejectsNonLatinNames(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)

	for _, bad := range []string{"Jane3", "J@ne", "Жана", "Jane!"} {
		f := NewChangeUserForm(conn, user)
		f.Bind(url.Values{
			"first_name": {bad},
			"last_name":  {"Doe"},
			"email":      {"rep@example.com"},
		})
		v := f.Validate()
		if v["first_name"] != "Please use only Latin characters." {
			t.Errorf("%q: expected Latin characters violation, got %v", bad, v)
		}
	}
}

func TestChangeUserAcceptsApostropheAndSpaces(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)

	f := NewChangeUserForm(conn, user)
	f.Bind(url.Values{
		"first_name": {"Mary Jane"},
		"last_name":  {"O'Connor"},
		"email":      {"rep@example.com"},
	})
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
}

func TestChangeUserEmailUniqueness(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	createUser(t, conn, "taken@example.com", "Other", true, models.GroupRep)

	f := NewChangeUserForm(conn, user)
	f.Bind(url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"taken@example.com"},
	})
	v := f.Validate()
	if v["email"] != emailTakenMessage {
		t.Fatalf("expected email-taken violation, got %v", v)
	}

	// Keeping the current email must not trip the uniqueness check.
	f = NewChangeUserForm(conn, user)
	f.Bind(url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"rep@example.com"},
	})
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("own email should be excluded from the check, got %v", v)
	}
}

func TestChangeUserSaveRecomputesUsername(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)

	f := NewChangeUserForm(conn, user)
	f.Bind(url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"renamed@example.com"},
	})
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var saved models.User
	conn.First(&saved, user.ID)
	if saved.Email != "renamed@example.com" {
		t.Errorf("email not saved: %q", saved.Email)
	}
	if saved.Username != models.UsernameFromEmail("renamed@example.com") {
		t.Errorf("username not recomputed: %q", saved.Username)
	}
}
