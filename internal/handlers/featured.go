package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/pemmasanikrishna/remo/auth"
	"github.com/pemmasanikrishna/remo/httpx"
	"github.com/pemmasanikrishna/remo/internal/models"
	"github.com/pemmasanikrishna/remo/validation"
	"github.com/pemmasanikrishna/remo/view"
)

type FeaturedHandler struct {
	db *gorm.DB
}

func NewFeaturedHandler(db *gorm.DB) *FeaturedHandler {
	return &FeaturedHandler{db: db}
}

func (h *FeaturedHandler) List(w http.ResponseWriter, r *http.Request) {
	var articles []models.FeaturedRep
	h.db.Order("created_at DESC").Find(&articles)

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, articles)
		return
	}

	view.Render(w, r, "featuredrep_list.html", map[string]any{
		"Articles": articles,
	})
}

func (h *FeaturedHandler) New(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, "featuredrep_alter.html", map[string]any{
		"Article":   models.FeaturedRep{},
		"CreateNew": true,
		"Errors":    validation.Violations{},
	})
}

func (h *FeaturedHandler) Create(w http.ResponseWriter, r *http.Request) {
	article := models.FeaturedRep{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	v := make(validation.Violations)
	validation.Required("title", article.Title, "Title is required.", v)
	validation.Required("content", article.Content, "Content is required.", v)

	if !v.Empty() {
		view.Render(w, r, "featuredrep_alter.html", map[string]any{
			"Article":   article,
			"CreateNew": true,
			"Errors":    v,
		})
		return
	}

	if err := h.db.Create(&article).Error; err != nil {
		view.Render(w, r, "featuredrep_alter.html", map[string]any{
			"Article":   article,
			"CreateNew": true,
			"Error":     "Failed to save article",
			"Errors":    validation.Violations{},
		})
		return
	}

	auth.Flash(w, "New featured rep article created.")
	http.Redirect(w, r, "/featured", http.StatusSeeOther)
}

func (h *FeaturedHandler) Edit(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}
	view.Render(w, r, "featuredrep_alter.html", map[string]any{
		"Article": article,
		"Errors":  validation.Violations{},
	})
}

func (h *FeaturedHandler) Update(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}

	article.Title = r.FormValue("title")
	article.Content = r.FormValue("content")

	v := make(validation.Violations)
	validation.Required("title", article.Title, "Title is required.", v)
	validation.Required("content", article.Content, "Content is required.", v)

	if !v.Empty() {
		view.Render(w, r, "featuredrep_alter.html", map[string]any{
			"Article": article,
			"Errors":  v,
		})
		return
	}

	if err := h.db.Save(&article).Error; err != nil {
		view.Render(w, r, "featuredrep_alter.html", map[string]any{
			"Article": article,
			"Error":   "Failed to save article",
			"Errors":  validation.Violations{},
		})
		return
	}

	auth.Flash(w, "Featured rep article successfuly edited.")
	http.Redirect(w, r, "/featured", http.StatusSeeOther)
}

func (h *FeaturedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := h.db.Delete(&article).Error; err != nil {
		http.Error(w, "Failed to delete article", http.StatusInternalServerError)
		return
	}

	auth.Flash(w, "Featured rep article successfuly deleted.")
	http.Redirect(w, r, "/featured", http.StatusSeeOther)
}

func (h *FeaturedHandler) load(w http.ResponseWriter, r *http.Request) (models.FeaturedRep, bool) {
	id := r.PathValue("id")

	var article models.FeaturedRep
	if err := h.db.First(&article, "id = ?", id).Error; err != nil {
		http.NotFound(w, r)
		return article, false
	}
	return article, true
}
