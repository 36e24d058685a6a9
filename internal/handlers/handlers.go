// Package handlers contains the HTTP handlers for the portal: auth,
// featured rep articles, profiles, availability status and membership
// dates. Resource-level ownership checks go through an Authorizer; the
// group-level permission checks happen in the route middleware.
package handlers

import (
	"context"

	"github.com/pemmasanikrishna/remo/gate"
)

// Authorizer answers ownership-aware authorization questions for the
// user carried in the context.
type Authorizer interface {
	Authorize(ctx context.Context, action gate.Action, resourceType string, resource any) error
}
