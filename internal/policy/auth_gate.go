package policy

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/auth"
	"github.com/pemmasanikrishna/remo/gate"
	"github.com/pemmasanikrishna/remo/internal/models"
)

// Resource types known to the gate. Permission codes are built from
// these plus an action, e.g. "featuredrep:create".
const (
	ResourceFeaturedRep = "featuredrep"
	ResourceProfile     = "profile"
	ResourceDates       = "dates"
	ResourceStatus      = "status"
	ResourceUser        = "user"
)

// AuthGate holds the configured Gate with caching.
// Use this as the central authorization point in the application.
type AuthGate struct {
	Gate          *gate.Gate[uint]
	CacheResolver *gate.CachedResolver[uint]

	db *gorm.DB
}

// NewAuthGate creates a fully configured authorization gate backed by the
// group tables, with profile lookups cached for cacheTTL.
func NewAuthGate(db *gorm.DB, cacheTTL time.Duration) *AuthGate {
	dbResolver := NewGroupProfileResolver(db)

	// Cache profiles so every request doesn't hit the database.
	cachedResolver := gate.NewCachedResolver[uint](dbResolver, cacheTTL)

	g := gate.New[uint](cachedResolver)

	ag := &AuthGate{
		Gate:          g,
		CacheResolver: cachedResolver,
		db:            db,
	}

	// Personal records: owner, their mentor, or an admin.
	personal := NewAdminBypassPolicy(NewOwnershipPolicy(), ag.adminOrMentorBypass)
	g.Register(ResourceProfile, personal)
	g.Register(ResourceDates, personal)
	g.Register(ResourceStatus, NewAdminBypassPolicy(NewOwnershipPolicy(), ag.adminBypass))

	return ag
}

// RegisterPolicy adds an ownership policy for a resource type.
func (ag *AuthGate) RegisterPolicy(resourceType string, p gate.Policy[uint]) {
	ag.Gate.Register(resourceType, p)
}

// Authorize checks if the current (context) user can perform an action on
// a resource. Returns nil if authorized, gate.ErrUnauthorized otherwise.
func (ag *AuthGate) Authorize(ctx context.Context, action gate.Action, resourceType string, resource any) error {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return gate.ErrUnauthorized
	}
	return ag.Gate.Authorize(ctx, userID, action, resourceType, resource)
}

// Can is a convenience method that returns bool instead of error.
func (ag *AuthGate) Can(ctx context.Context, action gate.Action, resourceType string, resource any) bool {
	return ag.Authorize(ctx, action, resourceType, resource) == nil
}

// CanProfile checks only profile permissions (no ownership check).
// Useful for templates to show or hide links before a resource is loaded.
func (ag *AuthGate) CanProfile(ctx context.Context, action gate.Action, resourceType string) bool {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return false
	}
	return ag.Gate.CanProfile(ctx, userID, action, resourceType)
}

// IsAdmin reports whether the context user holds the superadmin permission.
func (ag *AuthGate) IsAdmin(ctx context.Context) bool {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return false
	}
	profile, err := ag.CacheResolver.Resolve(ctx, userID)
	if err != nil || profile == nil {
		return false
	}
	return profile.HasPermission(gate.PermissionSuperAdmin)
}

// InvalidateUser clears the cached profile for one user. Call it when
// the user's group memberships change.
func (ag *AuthGate) InvalidateUser(userID uint) {
	ag.CacheResolver.Invalidate(userID)
}

// InvalidateAll clears the entire profile cache.
func (ag *AuthGate) InvalidateAll() {
	ag.CacheResolver.InvalidateAll()
}

// adminBypass lets superadmins through ownership checks.
func (ag *AuthGate) adminBypass(ctx context.Context, userID uint, _ any) bool {
	profile, err := ag.CacheResolver.Resolve(ctx, userID)
	if err != nil || profile == nil {
		return false
	}
	return profile.HasPermission(gate.PermissionSuperAdmin)
}

// adminOrMentorBypass additionally lets a mentor edit the personal
// records of the Reps assigned to them.
func (ag *AuthGate) adminOrMentorBypass(ctx context.Context, userID uint, resource any) bool {
	if ag.adminBypass(ctx, userID, resource) {
		return true
	}
	ownable, ok := resource.(Ownable)
	if !ok {
		return false
	}
	var profile models.UserProfile
	err := ag.db.WithContext(ctx).Where("user_id = ?", ownable.OwnerID()).First(&profile).Error
	if err != nil || profile.MentorID == nil {
		return false
	}
	return *profile.MentorID == userID
}

// RequirePermission returns middleware that checks profile permission.
// Denies with 403 Forbidden when the user lacks the permission.
func (ag *AuthGate) RequirePermission(resourceType string, action gate.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ag.CanProfile(r.Context(), action, resourceType) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin returns middleware that only allows superadmin users.
func (ag *AuthGate) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := auth.UserIDFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			profile, err := ag.CacheResolver.Resolve(r.Context(), userID)
			if err != nil || profile == nil {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			if !profile.HasPermission(gate.PermissionSuperAdmin) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
