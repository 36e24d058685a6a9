package db

import (
	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/models"
)

// seedPermissions creates the core resource:action rows.
func seedPermissions(db *gorm.DB) error {
	permissions := []struct {
		ResourceType string
		Action       string
		Description  string
	}{
		// Superadmin wildcard
		{"*", "*", "Full system access"},
		// Featured rep articles
		{"featuredrep", "*", "All featured rep article actions"},
		{"featuredrep", "list", "List featured rep articles"},
		{"featuredrep", "view", "View featured rep articles"},
		{"featuredrep", "create", "Create featured rep articles"},
		{"featuredrep", "update", "Edit featured rep articles"},
		{"featuredrep", "delete", "Delete featured rep articles"},
		// Profiles
		{"profile", "*", "All profile actions"},
		{"profile", "view", "View user profiles"},
		{"profile", "update", "Edit user profiles"},
		{"profile", "nominate", "Nominate Rep of the month"},
		// Program dates
		{"dates", "update", "Edit program membership dates"},
		// Availability status
		{"status", "*", "All availability status actions"},
		{"status", "view", "View availability status"},
		{"status", "create", "Declare unavailability"},
		{"status", "update", "Edit availability status"},
		{"status", "delete", "End unavailability"},
		// User management
		{"user", "invite", "Invite new users"},
		{"user", "list", "List users"},
	}

	for _, p := range permissions {
		perm := models.Permission{
			ResourceType: p.ResourceType,
			Action:       p.Action,
			Description:  p.Description,
		}
		result := db.Where("resource_type = ? AND action = ?", p.ResourceType, p.Action).
			FirstOrCreate(&perm)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

// seedGroups creates the program groups with their permission sets.
// Mozillians is a provisional external-identity group and carries no
// permissions on purpose.
func seedGroups(db *gorm.DB) error {
	if err := seedPermissions(db); err != nil {
		return err
	}

	groups := []struct {
		Name        string
		Description string
		Permissions []string // "resource:action" format
	}{
		{
			Name:        models.GroupAdmin,
			Description: "Program administrators with full access",
			Permissions: []string{"*:*"},
		},
		{
			Name:        models.GroupCouncil,
			Description: "Council members managing featured rep articles",
			Permissions: []string{
				"featuredrep:*",
				"profile:view",
				"profile:nominate",
				"user:list",
			},
		},
		{
			Name:        models.GroupMentor,
			Description: "Mentors guiding representatives",
			Permissions: []string{
				"featuredrep:list",
				"featuredrep:view",
				"profile:view",
				"profile:update",
				"status:view",
				"user:invite",
				"user:list",
			},
		},
		{
			Name:        models.GroupRep,
			Description: "Program representatives",
			Permissions: []string{
				"featuredrep:list",
				"featuredrep:view",
				"profile:view",
				"profile:update",
				"status:*",
			},
		},
		{
			Name:        models.GroupAlumni,
			Description: "Former representatives",
			Permissions: []string{
				"featuredrep:list",
				"featuredrep:view",
				"profile:view",
				"profile:update",
			},
		},
		{
			Name:        models.GroupMozillians,
			Description: "Provisional external identities",
			Permissions: nil,
		},
	}

	for _, g := range groups {
		var group models.Group
		result := db.Where("name = ?", g.Name).First(&group)
		if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		if result.Error == gorm.ErrRecordNotFound {
			group = models.Group{Name: g.Name, Description: g.Description, IsSystem: true}
			if err := db.Create(&group).Error; err != nil {
				return err
			}
		}

		if len(g.Permissions) == 0 {
			continue
		}
		var perms []models.Permission
		for _, code := range g.Permissions {
			var perm models.Permission
			res, act := splitCode(code)
			if err := db.Where("resource_type = ? AND action = ?", res, act).First(&perm).Error; err != nil {
				return err
			}
			perms = append(perms, perm)
		}
		if err := db.Model(&group).Association("Permissions").Replace(perms); err != nil {
			return err
		}
	}
	return nil
}

// seedFunctionalAreas creates the default functional-area tags.
func seedFunctionalAreas(db *gorm.DB) error {
	areas := []string{
		"Community Building",
		"Developer Outreach",
		"Localization",
		"Marketing",
		"Public Speaking",
		"QA",
		"Support",
		"Web Development",
	}
	for _, name := range areas {
		area := models.FunctionalArea{Name: name, Active: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&area).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed creates default reference rows (groups, permissions, functional
// areas). Safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedGroups(db); err != nil {
		return err
	}
	return seedFunctionalAreas(db)
}

func splitCode(code string) (resource, action string) {
	for i := 0; i < len(code); i++ {
		if code[i] == ':' {
			return code[:i], code[i+1:]
		}
	}
	return code, ""
}
