package policy

import (
	"context"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/gate"
	"github.com/pemmasanikrishna/remo/internal/models"
)

// GroupProfileResolver derives a user's effective permission profile
// from the union of their group memberships. It implements
// gate.ProfileResolver for uint user IDs.
type GroupProfileResolver struct {
	DB *gorm.DB
}

// NewGroupProfileResolver creates a database-backed group resolver.
func NewGroupProfileResolver(db *gorm.DB) *GroupProfileResolver {
	return &GroupProfileResolver{DB: db}
}

// Resolve loads the user's groups with their permissions and returns the
// combined profile. Returns nil if the user belongs to no groups.
func (r *GroupProfileResolver) Resolve(ctx context.Context, userID uint) (gate.Profile, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Preload("Groups.Permissions").First(&user, userID).Error
	if err != nil {
		return nil, err
	}
	if len(user.Groups) == 0 {
		return nil, nil
	}
	return &groupProfileAdapter{user: &user}, nil
}

// groupProfileAdapter presents the union of a user's group permissions
// as a gate.Profile.
type groupProfileAdapter struct {
	user *models.User
}

// ID returns the user id the profile was derived from.
func (a *groupProfileAdapter) ID() uint {
	return a.user.ID
}

// Name joins the group names, e.g. "Admin+Mentor".
func (a *groupProfileAdapter) Name() string {
	name := ""
	for i, g := range a.user.Groups {
		if i > 0 {
			name += "+"
		}
		name += g.Name
	}
	return name
}

// HasPermission checks the requested permission against every group.
// Supports wildcards: "*:*" (superadmin) and "resource:*".
func (a *groupProfileAdapter) HasPermission(perm gate.Permission) bool {
	for _, g := range a.user.Groups {
		for _, p := range g.Permissions {
			held := gate.NewPermission(p.ResourceType, gate.Action(p.Action))
			if held.Matches(perm) {
				return true
			}
		}
	}
	return false
}

// Permissions returns the union of all group permissions.
func (a *groupProfileAdapter) Permissions() []gate.Permission {
	seen := map[gate.Permission]bool{}
	var result []gate.Permission
	for _, g := range a.user.Groups {
		for _, p := range g.Permissions {
			perm := gate.NewPermission(p.ResourceType, gate.Action(p.Action))
			if !seen[perm] {
				seen[perm] = true
				result = append(result, perm)
			}
		}
	}
	return result
}
