package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/pemmasanikrishna/remo/internal/models"
)

func TestDatesAlumniAutoPopulated(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "alumni@example.com", "Jane", true, models.GroupAlumni)
	user = reloadWithGroups(t, conn, user.ID)

	f := NewChangeDatesForm(conn, user, user.Profile)
	// Left date untouched by the caller.
	f.Bind(url.Values{"date_joined_program": {"2019-03-01"}, "date_left_program": {""}})
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var saved models.UserProfile
	conn.First(&saved, user.Profile.ID)
	if saved.DateLeftProgram == nil {
		t.Fatal("alumni left-date should be auto-populated")
	}
	now := time.Now()
	if saved.DateLeftProgram.Year() != now.Year() ||
		saved.DateLeftProgram.YearDay() != now.YearDay() {
		t.Fatalf("expected today, got %v", saved.DateLeftProgram)
	}
}

func TestDatesAlumniExplicitValueKept(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "alumni@example.com", "Jane", true, models.GroupAlumni)
	user = reloadWithGroups(t, conn, user.ID)

	f := NewChangeDatesForm(conn, user, user.Profile)
	f.Bind(url.Values{
		"date_joined_program": {"2019-03-01"},
		"date_left_program":   {"2024-06-15"},
	})
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var saved models.UserProfile
	conn.First(&saved, user.Profile.ID)
	if saved.DateLeftProgram == nil || saved.DateLeftProgram.Format("2006-01-02") != "2024-06-15" {
		t.Fatalf("explicit alumni left-date should be kept, got %v", saved.DateLeftProgram)
	}
}

func TestDatesClearedForActiveRep(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)

	// Pre-set a stale left date directly.
	stale := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	conn.Model(user.Profile).Update("date_left_program", stale)

	user = reloadWithGroups(t, conn, user.ID)
	f := NewChangeDatesForm(conn, user, user.Profile)
	// The caller even tries to set a left date; it must still be cleared.
	f.Bind(url.Values{
		"date_joined_program": {"2019-03-01"},
		"date_left_program":   {"2024-06-15"},
	})
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var saved models.UserProfile
	conn.First(&saved, user.Profile.ID)
	if saved.DateLeftProgram != nil {
		t.Fatalf("non-alumni left-date must be cleared, got %v", saved.DateLeftProgram)
	}
}

func TestDatesRejectsGarbage(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	user = reloadWithGroups(t, conn, user.ID)

	f := NewChangeDatesForm(conn, user, user.Profile)
	f.Bind(url.Values{"date_joined_program": {"not-a-date"}})
	v := f.Validate()
	if v["date_joined_program"] != "Enter a valid date." {
		t.Fatalf("expected date violation, got %v", v)
	}
}
