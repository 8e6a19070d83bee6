package handler

import (
	"net/http"

	"github.com/folio/folio-go/internal/middleware"
	"github.com/folio/folio-go/internal/model"
	"github.com/folio/folio-go/internal/service"
)

// AuthHandler handles operator authentication requests.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleLogin handles POST /api/auth/login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to log in")
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// HandleMe handles GET /api/auth/me.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, r, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetUser(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch user")
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}
