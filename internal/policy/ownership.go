package policy

import (
	"context"

	"github.com/pemmasanikrishna/remo/gate"
)

// Ownable is implemented by resources that belong to a single user.
// Models implement it to opt in to ownership-based authorization.
type Ownable interface {
	OwnerID() uint
}

// OwnershipPolicy allows access only when the user owns the resource.
// Profiles, availability statuses and membership dates are personal
// records; a Rep may only touch their own.
type OwnershipPolicy struct{}

// NewOwnershipPolicy creates a new ownership policy.
func NewOwnershipPolicy() *OwnershipPolicy {
	return &OwnershipPolicy{}
}

// Can checks if the user owns the resource. For list/create actions
// (resource is nil) it returns true since profile permissions already
// control access at that level.
func (p *OwnershipPolicy) Can(_ context.Context, userID uint, _ gate.Action, resource any) bool {
	if resource == nil {
		return true
	}
	ownable, ok := resource.(Ownable)
	if !ok {
		// Resources without an owner cannot pass an ownership check.
		return false
	}
	return ownable.OwnerID() == userID
}

// AdminBypassPolicy wraps another policy and lets administrators and
// mentors through regardless of ownership. Mentors edit the profiles of
// the Reps they mentor, admins edit anything.
type AdminBypassPolicy struct {
	inner      gate.Policy[uint]
	bypassFunc func(ctx context.Context, userID uint, resource any) bool
}

// NewAdminBypassPolicy creates a policy that consults bypassFunc first
// and falls back to the inner policy.
func NewAdminBypassPolicy(inner gate.Policy[uint], bypassFunc func(ctx context.Context, userID uint, resource any) bool) *AdminBypassPolicy {
	return &AdminBypassPolicy{
		inner:      inner,
		bypassFunc: bypassFunc,
	}
}

// Can checks the bypass first, then the inner policy.
func (p *AdminBypassPolicy) Can(ctx context.Context, userID uint, action gate.Action, resource any) bool {
	if p.bypassFunc != nil && p.bypassFunc(ctx, userID, resource) {
		return true
	}
	return p.inner.Can(ctx, userID, action, resource)
}
