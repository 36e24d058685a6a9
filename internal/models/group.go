package models

import "time"

// Canonical group names used across the portal.
const (
	GroupAdmin      = "Admin"
	GroupCouncil    = "Council"
	GroupMentor     = "Mentor"
	GroupRep        = "Rep"
	GroupAlumni     = "Alumni"
	GroupMozillians = "Mozillians"
)

// Group is a named role. A user's effective permissions are the union of
// the permissions of all groups they belong to.
type Group struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Name        string       `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string       `gorm:"size:500" json:"description,omitempty"`
	IsSystem    bool         `gorm:"default:false" json:"is_system"`
	Permissions []Permission `gorm:"many2many:group_permissions;" json:"permissions,omitempty"`
	Users       []User       `gorm:"many2many:user_groups;" json:"users,omitempty"`
}

// Permission represents a single action allowed on a resource type.
// Format: "resource:action" (e.g., "featuredrep:create", "profile:update").
type Permission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ResourceType string    `gorm:"size:50;not null;index:idx_perm_resource_action" json:"resource_type"`
	Action       string    `gorm:"size:50;not null;index:idx_perm_resource_action" json:"action"`
	Description  string    `gorm:"size:200" json:"description,omitempty"`
}

// Code returns the permission in "resource:action" format for matching.
func (p Permission) Code() string {
	return p.ResourceType + ":" + p.Action
}
