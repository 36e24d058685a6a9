package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/auth"
	"github.com/pemmasanikrishna/remo/internal/forms"
	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
	"github.com/pemmasanikrishna/remo/view"
)

// DatesHandler edits the program membership dates of a user. Routes are
// admin only; the alumni left-date maintenance happens in the form.
type DatesHandler struct {
	db *gorm.DB
}

func NewDatesHandler(db *gorm.DB) *DatesHandler {
	return &DatesHandler{db: db}
}

func (h *DatesHandler) load(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id := r.PathValue("id")

	var user models.User
	if err := h.db.Preload("Groups").Preload("Profile").First(&user, "id = ?", id).Error; err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	if user.Profile == nil {
		profile := models.UserProfile{UserID: user.ID}
		if err := h.db.Create(&profile).Error; err != nil {
			http.Error(w, "Failed to load profile", http.StatusInternalServerError)
			return nil, false
		}
		user.Profile = &profile
	}
	return &user, true
}

func (h *DatesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.load(w, r)
	if !ok {
		return
	}

	form := forms.NewChangeDatesForm(h.db, user, user.Profile)
	view.Render(w, r, "profiles/dates.html", map[string]any{
		"Subject": user,
		"Form":    form,
		"Errors":  validation.Violations{},
	})
}

func (h *DatesHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form := forms.NewChangeDatesForm(h.db, user, user.Profile)
	form.Bind(r.PostForm)

	if v := form.Validate(); !v.Empty() {
		view.Render(w, r, "profiles/dates.html", map[string]any{
			"Subject": user,
			"Form":    form,
			"Errors":  v,
		})
		return
	}

	if err := form.Save(); err != nil {
		http.Error(w, "Failed to save dates", http.StatusInternalServerError)
		return
	}

	auth.Flash(w, "Profile dates successfully edited.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
