package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/auth"
	"github.com/pemmasanikrishna/remo/gate"
	"github.com/pemmasanikrishna/remo/internal/forms"
	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
	"github.com/pemmasanikrishna/remo/view"
)

// ProfileHandler serves the identity and profile forms. The subject is
// the session user unless the route carries an explicit {id}; editing
// someone else's profile additionally requires passing the ownership
// policy (owner, their mentor, or an admin).
type ProfileHandler struct {
	db       *gorm.DB
	authGate Authorizer
}

func NewProfileHandler(db *gorm.DB, authGate Authorizer) *ProfileHandler {
	return &ProfileHandler{db: db, authGate: authGate}
}

// subject resolves the user being edited, with Groups and Profile
// loaded. Missing profiles are created empty so invited users can
// complete registration.
func (h *ProfileHandler) subject(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id := r.PathValue("id")
	if id == "" {
		uid, _ := auth.UserIDFromContext(r.Context())
		var user models.User
		if err := h.db.Preload("Groups").Preload("Profile.FunctionalAreas").First(&user, uid).Error; err != nil {
			http.NotFound(w, r)
			return nil, false
		}
		return h.ensureProfile(w, &user)
	}

	var user models.User
	if err := h.db.Preload("Groups").Preload("Profile.FunctionalAreas").First(&user, "id = ?", id).Error; err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	return h.ensureProfile(w, &user)
}

func (h *ProfileHandler) ensureProfile(w http.ResponseWriter, user *models.User) (*models.User, bool) {
	if user.Profile == nil {
		profile := models.UserProfile{UserID: user.ID}
		if err := h.db.Create(&profile).Error; err != nil {
			http.Error(w, "Failed to load profile", http.StatusInternalServerError)
			return nil, false
		}
		user.Profile = &profile
	}
	return user, true
}

func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.subject(w, r)
	if !ok {
		return
	}
	if err := h.authGate.Authorize(r.Context(), gate.ActionUpdate, "profile", user.Profile); err != nil {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	userForm := forms.NewChangeUserForm(h.db, user)
	profileForm, err := forms.NewChangeProfileForm(h.db, user)
	if err != nil {
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	h.renderEdit(w, r, user, userForm, profileForm, nil)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.subject(w, r)
	if !ok {
		return
	}
	if err := h.authGate.Authorize(r.Context(), gate.ActionUpdate, "profile", user.Profile); err != nil {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	userForm := forms.NewChangeUserForm(h.db, user)
	profileForm, err := forms.NewChangeProfileForm(h.db, user)
	if err != nil {
		http.Error(w, "Failed to load form", http.StatusInternalServerError)
		return
	}

	userForm.Bind(r.PostForm)
	profileForm.Bind(r.PostForm)

	v := userForm.Validate()
	for field, message := range profileForm.Validate() {
		v.Add(field, message)
	}
	if !v.Empty() {
		h.renderEdit(w, r, user, userForm, profileForm, v)
		return
	}

	if err := userForm.Save(); err != nil {
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}
	if err := profileForm.Save(); err != nil {
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	auth.Flash(w, "Profile successfully edited.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *ProfileHandler) renderEdit(w http.ResponseWriter, r *http.Request, user *models.User, userForm *forms.ChangeUserForm, profileForm *forms.ChangeProfileForm, v map[string]string) {
	var areas []models.FunctionalArea
	h.db.Where("active = ?", true).Order("name").Find(&areas)

	view.Render(w, r, "profiles/edit.html", map[string]any{
		"Subject":     user,
		"UserForm":    userForm,
		"ProfileForm": profileForm,
		"Areas":       areas,
		"Errors":      v,
	})
}

func (h *ProfileHandler) Invite(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, "profiles/invite.html", map[string]any{
		"Form":   forms.NewInviteUserForm(h.db),
		"Errors": validation.Violations{},
	})
}

func (h *ProfileHandler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form := forms.NewInviteUserForm(h.db)
	form.Bind(r.PostForm)

	if v := form.Validate(); !v.Empty() {
		view.Render(w, r, "profiles/invite.html", map[string]any{
			"Form":   form,
			"Errors": v,
		})
		return
	}

	if _, err := form.Save(); err != nil {
		view.Render(w, r, "profiles/invite.html", map[string]any{
			"Form":   form,
			"Error":  "Failed to invite user",
			"Errors": validation.Violations{},
		})
		return
	}

	auth.Flash(w, "Invitation sent successfully.")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Nominate flips the Rep-of-the-month flag on a profile. The flag never
// flips back through this endpoint.
func (h *ProfileHandler) Nominate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.subject(w, r)
	if !ok {
		return
	}

	form := forms.NewRotmNomineeForm(h.db, user.Profile)
	changed, err := form.Save()
	if err != nil {
		http.Error(w, "Failed to nominate", http.StatusInternalServerError)
		return
	}

	if changed {
		auth.Flash(w, "Rep nominated for Rep of the month.")
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
