package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folio/folio-go/internal/middleware"
	"github.com/folio/folio-go/internal/model"
	"github.com/folio/folio-go/internal/service"
)

// BlogHandler serves the blog post endpoints.
type BlogHandler struct {
	service *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{service: svc}
}

// HandleList handles GET /api/blog.
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPublished(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch blog posts")
		return
	}
	writeJSON(w, r, http.StatusOK, posts)
}

// HandleGet handles GET /api/blog/{slug}.
func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch blog post")
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}

// HandleCreate handles POST /api/blog. The post is attributed to the
// authenticated operator unless the body names an author.
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" {
		if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
			req.UserID = p.UserID
		}
	}

	post, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create blog post")
		return
	}
	writeJSON(w, r, http.StatusCreated, post)
}

// HandleUpdate handles PUT /api/blog/{slug}.
func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch model.BlogPostPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	post, err := h.service.Update(r.Context(), chi.URLParam(r, "slug"), patch)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update blog post")
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}

// HandleDelete handles DELETE /api/blog/{slug}.
func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeServiceError(w, r, err, "Failed to delete blog post")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Blog post deleted successfully"})
}
