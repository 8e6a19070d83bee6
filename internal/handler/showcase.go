package handler

import (
	"net/http"

	"github.com/folio/folio-go/internal/showcase"
)

// ShowcaseHandler serves listings that fall back to demo content.
type ShowcaseHandler struct {
	tiered *showcase.Tiered
}

// NewShowcaseHandler creates a new ShowcaseHandler.
func NewShowcaseHandler(t *showcase.Tiered) *ShowcaseHandler {
	return &ShowcaseHandler{tiered: t}
}

// HandlePosts handles GET /api/showcase/blog.
func (h *ShowcaseHandler) HandlePosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.tiered.Posts(r.Context()))
}

// HandleProjects handles GET /api/showcase/projects.
func (h *ShowcaseHandler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.tiered.Projects(r.Context()))
}
