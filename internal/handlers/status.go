package handlers

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/auth"
	"github.com/pemmasanikrishna/remo/gate"
	"github.com/pemmasanikrishna/remo/internal/forms"
	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
	"github.com/pemmasanikrishna/remo/view"
)

// StatusHandler manages temporary-unavailability declarations. A Rep
// edits their own current status; admins may edit anyone's through the
// ownership bypass.
type StatusHandler struct {
	db       *gorm.DB
	authGate Authorizer
}

func NewStatusHandler(db *gorm.DB, authGate Authorizer) *StatusHandler {
	return &StatusHandler{db: db, authGate: authGate}
}

// StartOfToday returns midnight in local time. A status is open while
// its expected return date is today or later on the local calendar.
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// current returns the open status for the session user, or a fresh
// unsaved record when none exists.
func (h *StatusHandler) current(r *http.Request) *models.UserStatus {
	uid, _ := auth.UserIDFromContext(r.Context())

	var status models.UserStatus
	err := h.db.Where("user_id = ? AND expected_date >= ?", uid, StartOfToday()).
		Order("created_at DESC").First(&status).Error
	if err != nil {
		return &models.UserStatus{UserID: uid}
	}
	return &status
}

func (h *StatusHandler) Edit(w http.ResponseWriter, r *http.Request) {
	status := h.current(r)
	if status.ID != 0 {
		if err := h.authGate.Authorize(r.Context(), gate.ActionUpdate, "status", status); err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
	}

	form, err := forms.NewUserStatusForm(h.db, status)
	if err != nil {
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	view.Render(w, r, "status/edit.html", map[string]any{
		"Form":   form,
		"Status": status,
		"Errors": validation.Violations{},
	})
}

func (h *StatusHandler) Save(w http.ResponseWriter, r *http.Request) {
	status := h.current(r)
	action := gate.ActionCreate
	if status.ID != 0 {
		action = gate.ActionUpdate
		if err := h.authGate.Authorize(r.Context(), action, "status", status); err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form, err := forms.NewUserStatusForm(h.db, status)
	if err != nil {
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}
	form.Bind(r.PostForm)

	if v := form.Validate(); !v.Empty() {
		view.Render(w, r, "status/edit.html", map[string]any{
			"Form":   form,
			"Status": status,
			"Errors": v,
		})
		return
	}

	if err := form.Save(); err != nil {
		view.Render(w, r, "status/edit.html", map[string]any{
			"Form":   form,
			"Status": status,
			"Error":  "Failed to save status",
			"Errors": validation.Violations{},
		})
		return
	}

	if action == gate.ActionCreate {
		auth.Flash(w, "Unavailability status submitted successfully.")
	} else {
		auth.Flash(w, "Unavailability status updated successfully.")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Delete ends the unavailability early by removing the open record.
func (h *StatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	status := h.current(r)
	if status.ID == 0 {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := h.authGate.Authorize(r.Context(), gate.ActionDelete, "status", status); err != nil {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.db.Delete(status).Error; err != nil {
		http.Error(w, "Failed to delete status", http.StatusInternalServerError)
		return
	}

	auth.Flash(w, "Welcome back! Have fun!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
