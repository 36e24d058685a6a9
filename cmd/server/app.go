package main

import (
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/auth"
	"github.com/pemmasanikrishna/remo/gate"
	"github.com/pemmasanikrishna/remo/i18n"
	"github.com/pemmasanikrishna/remo/internal/handlers"
	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/internal/policy"
	"github.com/pemmasanikrishna/remo/view"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux       *http.ServeMux
	db        *gorm.DB
	routerCfg *policy.RouterConfig
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, routerCfg *policy.RouterConfig) *App {
	app := &App{
		mux:       http.NewServeMux(),
		db:        db,
		routerCfg: routerCfg,
	}
	// Expose permission resolvers to the view layer so templates can
	// show or hide links without importing policy types.
	view.SetCanResolver(func(r *http.Request, resource, action string) bool {
		if os.Getenv("DEV") == "1" {
			return true
		}
		if routerCfg == nil || routerCfg.AuthGate == nil {
			return false
		}
		return routerCfg.AuthGate.CanProfile(r.Context(), gate.Action(action), resource)
	})
	view.SetIsAdminResolver(func(r *http.Request) bool {
		if os.Getenv("DEV") == "1" {
			return true
		}
		if routerCfg == nil || routerCfg.AuthGate == nil {
			return false
		}
		return routerCfg.AuthGate.IsAdmin(r.Context())
	})
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler := auth.Middleware(withPreferences(a.mux))
	handler.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	ah := a.routerCfg.AuthHandler

	// Public routes
	a.mux.HandleFunc("GET /{$}", a.landingPage)
	a.mux.HandleFunc("GET /login", ah.Login)
	a.mux.HandleFunc("POST /login", ah.Login)
	a.mux.HandleFunc("GET /logout", ah.Logout)
	a.mux.HandleFunc("POST /logout", ah.Logout)

	// Authenticated routes
	a.mux.Handle("GET /dashboard", a.requireAuth(http.HandlerFunc(a.dashboard)))

	// Featured rep articles: listing is open to every member group,
	// altering requires Council or Admin permissions.
	fh := a.routerCfg.FeaturedHandler
	a.mux.Handle("GET /featured",
		a.requireAuth(a.requirePermission("featuredrep", gate.ActionList)(http.HandlerFunc(fh.List))))
	a.mux.Handle("GET /featured/new",
		a.requireAuth(a.requirePermission("featuredrep", gate.ActionCreate)(http.HandlerFunc(fh.New))))
	a.mux.Handle("POST /featured",
		a.requireAuth(a.requirePermission("featuredrep", gate.ActionCreate)(http.HandlerFunc(fh.Create))))
	a.mux.Handle("GET /featured/{id}/edit",
		a.requireAuth(a.requirePermission("featuredrep", gate.ActionUpdate)(http.HandlerFunc(fh.Edit))))
	a.mux.Handle("POST /featured/{id}",
		a.requireAuth(a.requirePermission("featuredrep", gate.ActionUpdate)(http.HandlerFunc(fh.Update))))
	a.mux.Handle("POST /featured/{id}/delete",
		a.requireAuth(a.requirePermission("featuredrep", gate.ActionDelete)(http.HandlerFunc(fh.Delete))))

	// Profiles: own profile plus mentor/admin access enforced by the
	// ownership policy inside the handler.
	ph := a.routerCfg.ProfileHandler
	a.mux.Handle("GET /profile/edit",
		a.requireAuth(a.requirePermission("profile", gate.ActionUpdate)(http.HandlerFunc(ph.Edit))))
	a.mux.Handle("POST /profile/edit",
		a.requireAuth(a.requirePermission("profile", gate.ActionUpdate)(http.HandlerFunc(ph.Update))))
	a.mux.Handle("GET /people/{id}/edit",
		a.requireAuth(a.requirePermission("profile", gate.ActionUpdate)(http.HandlerFunc(ph.Edit))))
	a.mux.Handle("POST /people/{id}/edit",
		a.requireAuth(a.requirePermission("profile", gate.ActionUpdate)(http.HandlerFunc(ph.Update))))
	a.mux.Handle("GET /people/invite",
		a.requireAuth(a.requirePermission("user", gate.ActionInvite)(http.HandlerFunc(ph.Invite))))
	a.mux.Handle("POST /people/invite",
		a.requireAuth(a.requirePermission("user", gate.ActionInvite)(http.HandlerFunc(ph.CreateInvite))))
	a.mux.Handle("POST /people/{id}/nominate",
		a.requireAuth(a.requirePermission("profile", gate.ActionNominate)(http.HandlerFunc(ph.Nominate))))

	// Availability status
	sh := a.routerCfg.StatusHandler
	a.mux.Handle("GET /status/edit",
		a.requireAuth(a.requirePermission("status", gate.ActionView)(http.HandlerFunc(sh.Edit))))
	a.mux.Handle("POST /status",
		a.requireAuth(a.requirePermission("status", gate.ActionCreate)(http.HandlerFunc(sh.Save))))
	a.mux.Handle("POST /status/delete",
		a.requireAuth(a.requirePermission("status", gate.ActionDelete)(http.HandlerFunc(sh.Delete))))

	// Membership dates (admin only)
	dh := a.routerCfg.DatesHandler
	a.mux.Handle("GET /people/{id}/dates",
		a.requireAuth(a.requireAdmin(http.HandlerFunc(dh.Edit))))
	a.mux.Handle("POST /people/{id}/dates",
		a.requireAuth(a.requireAdmin(http.HandlerFunc(dh.Update))))

	// Static files
	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
}

// requireAuth wraps a handler to require authentication.
func (a *App) requireAuth(next http.Handler) http.Handler {
	return auth.RequireAuth(next)
}

// requireAdmin wraps a handler to require the superadmin permission.
func (a *App) requireAdmin(next http.Handler) http.Handler {
	return a.routerCfg.AuthGate.RequireAdmin()(next)
}

// requirePermission wraps a handler to require a group-level permission.
func (a *App) requirePermission(resourceType string, action gate.Action) func(http.Handler) http.Handler {
	return a.routerCfg.AuthGate.RequirePermission(resourceType, action)
}

// withPreferences injects the language preference from cookie or query.
func withPreferences(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		lang := "en"
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			lang = c.Value
		}
		if q := r.URL.Query().Get("lang"); q != "" {
			lang = q
			http.SetCookie(w, &http.Cookie{
				Name:     "lang",
				Value:    lang,
				Path:     "/",
				MaxAge:   86400 * 365,
				HttpOnly: true,
			})
		}
		ctx = i18n.WithLang(ctx, lang)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *App) landingPage(w http.ResponseWriter, r *http.Request) {
	userID, loggedIn := auth.UserIDFromContext(r.Context())
	data := map[string]any{
		"IsLoggedIn": loggedIn,
		"UserID":     userID,
	}
	if err := view.Render(w, r, "index.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
	}
}

func (a *App) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var user models.User
	a.db.Preload("Groups").Preload("Profile.Mentor").First(&user, userID)

	var status models.UserStatus
	unavailable := a.db.Where("user_id = ? AND expected_date >= ?", userID, handlers.StartOfToday()).
		Order("created_at DESC").First(&status).Error == nil

	var featured []models.FeaturedRep
	a.db.Order("created_at DESC").Limit(5).Find(&featured)

	var repCount int64
	a.db.Model(&models.Group{}).
		Joins("JOIN user_groups ug ON ug.group_id = groups.id").
		Where("groups.name = ?", models.GroupRep).
		Count(&repCount)

	view.Render(w, r, "dashboard.html", map[string]any{
		"User":        user,
		"Status":      status,
		"Unavailable": unavailable,
		"Featured":    featured,
		"RepCount":    repCount,
	})
}
