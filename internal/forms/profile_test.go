package forms

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/pemmasanikrishna/remo/internal/models"
)

func profileFormValues(mentorID string) url.Values {
	return url.Values{
		"country":         {"Greece"},
		"mentor":          {mentorID},
		"twitter_account": {"@janedoe"},
	}
}

func TestProfileMentorChoices(t *testing.T) {
	conn := setupTestDB(t)
	subject := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	mentor := createUser(t, conn, "mentor@example.com", "Alex", true, models.GroupMentor)
	// Mentor with incomplete registration must not appear.
	createUser(t, conn, "pending@example.com", "Pat", false, models.GroupMentor)
	// Rep is not a mentor candidate.
	createUser(t, conn, "other@example.com", "Sam", true, models.GroupRep)

	f, err := NewChangeProfileForm(conn, subject)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if len(f.MentorChoices) != 1 {
		t.Fatalf("expected 1 mentor candidate, got %d", len(f.MentorChoices))
	}
	if f.MentorChoices[0].ID != mentor.ID {
		t.Fatalf("unexpected mentor candidate %d", f.MentorChoices[0].ID)
	}
}

func TestProfileMentorRequired(t *testing.T) {
	conn := setupTestDB(t)
	subject := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	createUser(t, conn, "mentor@example.com", "Alex", true, models.GroupMentor)

	f, err := NewChangeProfileForm(conn, subject)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	f.Bind(profileFormValues("None"))
	v := f.Validate()
	if v["mentor"] != "Please select a mentor." {
		t.Fatalf("expected mentor violation, got %v", v)
	}
}

func TestProfileAlumniSkipsMentor(t *testing.T) {
	conn := setupTestDB(t)
	subject := createUser(t, conn, "alumni@example.com", "Jane", true, models.GroupAlumni)
	subject = reloadWithGroups(t, conn, subject.ID)

	f, err := NewChangeProfileForm(conn, subject)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	f.Bind(profileFormValues("None"))
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("alumni should skip mentor requirement, got %v", v)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var saved models.UserProfile
	conn.First(&saved, subject.Profile.ID)
	if saved.MentorID != nil {
		t.Fatal("alumni mentor must be forced empty")
	}
}

func TestProfilePostedAlumniFieldIgnored(t *testing.T) {
	conn := setupTestDB(t)
	subject := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	createUser(t, conn, "mentor@example.com", "Alex", true, models.GroupMentor)

	f, err := NewChangeProfileForm(conn, subject)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	// A non-Alumni user posting alumni_group must not escape the
	// mentor requirement.
	values := profileFormValues("None")
	values.Set("alumni_group", "1")
	f.Bind(values)
	if f.AlumniGroup {
		t.Fatal("alumni standing must come from group membership, not posted values")
	}
	v := f.Validate()
	if v["mentor"] != "Please select a mentor." {
		t.Fatalf("expected mentor violation, got %v", v)
	}
}

func TestProfileTwitterNormalized(t *testing.T) {
	conn := setupTestDB(t)
	subject := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	mentor := createUser(t, conn, "mentor@example.com", "Alex", true, models.GroupMentor)

	f, err := NewChangeProfileForm(conn, subject)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	f.Bind(profileFormValues(strconv.FormatUint(uint64(mentor.ID), 10)))
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if f.TwitterAccount != "janedoe" {
		t.Fatalf("expected leading @ stripped, got %q", f.TwitterAccount)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var saved models.UserProfile
	conn.First(&saved, subject.Profile.ID)
	if saved.TwitterAccount != "janedoe" {
		t.Fatalf("normalized handle not persisted: %q", saved.TwitterAccount)
	}
	if saved.MentorID == nil || *saved.MentorID != mentor.ID {
		t.Fatal("mentor assignment not persisted")
	}
}

func TestProfileCountryRequired(t *testing.T) {
	conn := setupTestDB(t)
	subject := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	mentor := createUser(t, conn, "mentor@example.com", "Alex", true, models.GroupMentor)

	f, err := NewChangeProfileForm(conn, subject)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	values := profileFormValues(strconv.FormatUint(uint64(mentor.ID), 10))
	values.Set("country", "")
	f.Bind(values)
	v := f.Validate()
	if v["country"] != "Please select one option from the list." {
		t.Fatalf("expected country violation, got %v", v)
	}

	values.Set("country", "Atlantis")
	f.Bind(values)
	v = f.Validate()
	if v["country"] != "Please select one option from the list." {
		t.Fatalf("expected unknown-country violation, got %v", v)
	}
}

func TestProfileFunctionalAreas(t *testing.T) {
	conn := setupTestDB(t)
	subject := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)
	mentor := createUser(t, conn, "mentor@example.com", "Alex", true, models.GroupMentor)

	var areas []models.FunctionalArea
	if err := conn.Limit(2).Find(&areas).Error; err != nil || len(areas) < 2 {
		t.Fatalf("expected seeded functional areas: %v", err)
	}

	f, err := NewChangeProfileForm(conn, subject)
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	values := profileFormValues(strconv.FormatUint(uint64(mentor.ID), 10))
	values["functional_areas"] = []string{
		strconv.FormatUint(uint64(areas[0].ID), 10),
		strconv.FormatUint(uint64(areas[1].ID), 10),
	}
	f.Bind(values)
	if v := f.Validate(); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var saved models.UserProfile
	if err := conn.Preload("FunctionalAreas").First(&saved, subject.Profile.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(saved.FunctionalAreas) != 2 {
		t.Fatalf("expected 2 functional areas, got %d", len(saved.FunctionalAreas))
	}
}
