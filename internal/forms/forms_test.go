package forms

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	remodb "github.com/pemmasanikrishna/remo/internal/db"
	"github.com/pemmasanikrishna/remo/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := remodb.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := remodb.Seed(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return conn
}

// createUser creates a user with a profile and the given groups.
func createUser(t *testing.T, conn *gorm.DB, email, firstName string, registered bool, groups ...string) *models.User {
	t.Helper()
	user := models.User{
		Email:     email,
		Username:  models.UsernameFromEmail(email),
		FirstName: firstName,
		LastName:  "Tester",
	}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, name := range groups {
		var g models.Group
		if err := conn.Where("name = ?", name).First(&g).Error; err != nil {
			t.Fatalf("group %s: %v", name, err)
		}
		if err := conn.Model(&user).Association("Groups").Append(&g); err != nil {
			t.Fatalf("assign group: %v", err)
		}
	}
	profile := models.UserProfile{UserID: user.ID, RegistrationComplete: registered}
	if err := conn.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	user.Profile = &profile
	return &user
}

func reloadWithGroups(t *testing.T, conn *gorm.DB, id uint) *models.User {
	t.Helper()
	var user models.User
	if err := conn.Preload("Groups").Preload("Profile").First(&user, id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return &user
}
