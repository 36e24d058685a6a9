package gate_test

import (
	"context"
	"testing"

	"github.com/pemmasanikrishna/remo/gate"
)

// mockOwnerPolicy checks if resource.OwnerID == userID
type mockOwnerPolicy struct{}

type mockResource struct {
	OwnerID uint
}

func (p *mockOwnerPolicy) Can(_ context.Context, userID uint, _ gate.Action, resource any) bool {
	if r, ok := resource.(*mockResource); ok {
		return r.OwnerID == userID
	}
	return false
}

func TestGate_ProfileOnly(t *testing.T) {
	resolver := gate.NewStaticResolver[uint]()
	profile := gate.NewStaticProfile(1, "council",
		gate.NewPermission("featuredrep", gate.ActionCreate),
		gate.NewPermission("featuredrep", gate.ActionView),
	)
	resolver.Set(1, profile)

	g := gate.New[uint](resolver)

	// User 1 can create an article (profile permission, no resource)
	if !g.Can(context.Background(), 1, gate.ActionCreate, "featuredrep", nil) {
		t.Error("user with permission should be allowed")
	}

	// User 1 cannot delete an article (no permission)
	if g.Can(context.Background(), 1, gate.ActionDelete, "featuredrep", nil) {
		t.Error("user without permission should be denied")
	}

	// User 2 has no profile
	if g.Can(context.Background(), 2, gate.ActionView, "featuredrep", nil) {
		t.Error("user without profile should be denied")
	}

	// Zero user is denied
	if g.Can(context.Background(), 0, gate.ActionView, "featuredrep", nil) {
		t.Error("zero user should be denied")
	}
}

func TestGate_WithOwnershipPolicy(t *testing.T) {
	resolver := gate.NewStaticResolver[uint]()
	profile := gate.NewStaticProfile(1, "rep",
		gate.NewPermission("status", gate.ActionView),
		gate.NewPermission("status", gate.ActionUpdate),
	)
	resolver.Set(1, profile)
	resolver.Set(2, profile) // User 2 has same profile

	g := gate.New[uint](resolver)
	g.Register("status", &mockOwnerPolicy{})

	resource := &mockResource{OwnerID: 1}

	// User 1 owns the resource - allowed
	if !g.Can(context.Background(), 1, gate.ActionUpdate, "status", resource) {
		t.Error("owner should be allowed")
	}

	// User 2 has permission but doesn't own - denied
	if g.Can(context.Background(), 2, gate.ActionUpdate, "status", resource) {
		t.Error("non-owner should be denied even with profile permission")
	}
}

func TestGate_CanProfile(t *testing.T) {
	resolver := gate.NewStaticResolver[uint]()
	profile := gate.NewStaticProfile(1, "rep",
		gate.NewPermission("featuredrep", gate.ActionList),
	)
	resolver.Set(1, profile)

	g := gate.New[uint](resolver)
	g.Register("featuredrep", &mockOwnerPolicy{})

	// CanProfile skips the ownership policy entirely
	if !g.CanProfile(context.Background(), 1, gate.ActionList, "featuredrep") {
		t.Error("profile permission should be enough for CanProfile")
	}
	if g.CanProfile(context.Background(), 1, gate.ActionDelete, "featuredrep") {
		t.Error("missing permission should deny CanProfile")
	}
	if g.CanProfile(context.Background(), 0, gate.ActionList, "featuredrep") {
		t.Error("zero user should be denied")
	}
}

func TestGate_SuperAdminWildcard(t *testing.T) {
	resolver := gate.NewStaticResolver[uint]()
	resolver.Set(1, gate.NewStaticProfile(1, "admin", gate.PermissionSuperAdmin))

	g := gate.New[uint](resolver)

	for _, action := range []gate.Action{gate.ActionList, gate.ActionCreate, gate.ActionUpdate, gate.ActionDelete} {
		if !g.Can(context.Background(), 1, action, "featuredrep", nil) {
			t.Errorf("superadmin should be allowed featuredrep:%s", action)
		}
	}
	if !g.Can(context.Background(), 1, gate.ActionUpdate, "profile", nil) {
		t.Error("superadmin should be allowed on any resource")
	}
}
