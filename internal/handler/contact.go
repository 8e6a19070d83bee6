package handler

import (
	"net/http"

	"github.com/folio/folio-go/internal/model"
	"github.com/folio/folio-go/internal/service"
)

// ContactHandler serves the contact form and the operator inbox.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// HandleSubmit handles POST /api/contact.
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.service.Submit(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to send message")
		return
	}

	writeJSON(w, r, http.StatusCreated, model.ContactResponse{Message: "Message sent successfully", ID: id})
}

// HandleList handles GET /api/contact.
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListRecent(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch messages")
		return
	}
	writeJSON(w, r, http.StatusOK, messages)
}
