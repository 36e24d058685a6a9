package forms

import (
	"testing"

	"github.com/pemmasanikrishna/remo/internal/models"
)

func TestRotmNominationFlipsOnce(t *testing.T) {
	conn := setupTestDB(t)
	user := createUser(t, conn, "rep@example.com", "Jane", true, models.GroupRep)

	f := NewRotmNomineeForm(conn, user.Profile)
	changed, err := f.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !changed {
		t.Fatal("first nomination should record a change")
	}

	var saved models.UserProfile
	conn.First(&saved, user.Profile.ID)
	if !saved.IsRotmNominee {
		t.Fatal("nomination flag not persisted")
	}

	// Nominating again is a no-op.
	f = NewRotmNomineeForm(conn, &saved)
	changed, err = f.Save()
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if changed {
		t.Fatal("already-nominated profile must not change")
	}
}
