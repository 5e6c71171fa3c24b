package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mearaf/codebridge-website/pkg/logging"
)

// Handler exposes the marketing content endpoints.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// HandleListTestimonials handles GET /api/testimonials.
func (h *Handler) HandleListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.repo.ListTestimonials(r.Context())
	if err != nil {
		h.logger.Error("failed to list testimonials", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

// HandleFeaturedTestimonials handles GET /api/testimonials/featured.
func (h *Handler) HandleFeaturedTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.repo.ListFeaturedTestimonials(r.Context())
	if err != nil {
		h.logger.Error("failed to list featured testimonials", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch featured testimonials")
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

// HandleCreateTestimonial handles POST /api/testimonials.
func (h *Handler) HandleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	t, err := h.repo.CreateTestimonial(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create testimonial", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "testimonial": t})
}

// HandleListArticles handles GET /api/articles. Drafts are never listed.
func (h *Handler) HandleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.repo.ListPublishedArticles(r.Context())
	if err != nil {
		h.logger.Error("failed to list articles", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleFeaturedArticles handles GET /api/articles/featured.
func (h *Handler) HandleFeaturedArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.repo.ListFeaturedArticles(r.Context())
	if err != nil {
		h.logger.Error("failed to list featured articles", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch featured articles")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// HandleGetArticle handles GET /api/articles/{slug}.
func (h *Handler) HandleGetArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, err := h.repo.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		h.logger.Error("failed to fetch article", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// HandleCreateArticle handles POST /api/articles.
func (h *Handler) HandleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		writeValidationError(w, problems)
		return
	}

	article, err := h.repo.CreateArticle(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			writeError(w, http.StatusConflict, "An article with that slug already exists")
			return
		}
		h.logger.Error("failed to create article", "slug", req.Slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "article": article})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

func writeValidationError(w http.ResponseWriter, problems []string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": "Validation error",
		"errors":  problems,
	})
}
