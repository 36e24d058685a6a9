package policy

import (
	"time"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/internal/handlers"
)

// RouterConfig bundles the authorization gate and all route handlers so
// the server wiring stays in one place.
type RouterConfig struct {
	AuthGate *AuthGate

	AuthHandler     *handlers.AuthHandler
	FeaturedHandler *handlers.FeaturedHandler
	ProfileHandler  *handlers.ProfileHandler
	StatusHandler   *handlers.StatusHandler
	DatesHandler    *handlers.DatesHandler
}

// NewRouterConfig creates the gate and every handler.
func NewRouterConfig(db *gorm.DB) *RouterConfig {
	authGate := NewAuthGate(db, 5*time.Minute)

	return &RouterConfig{
		AuthGate:        authGate,
		AuthHandler:     handlers.NewAuthHandler(db),
		FeaturedHandler: handlers.NewFeaturedHandler(db),
		ProfileHandler:  handlers.NewProfileHandler(db, authGate),
		StatusHandler:   handlers.NewStatusHandler(db, authGate),
		DatesHandler:    handlers.NewDatesHandler(db),
	}
}
