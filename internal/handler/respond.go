package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/go-chi/render"

	"github.com/folio/folio-go/internal/service"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func errorResponse(msg string) render.M {
	return render.M{"error": msg}
}

// decodeJSON reads the request body into dst, answering 413 or 400 itself
// when it cannot. It reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := render.DecodeJSON(r.Body, dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, r, http.StatusRequestEntityTooLarge, errorResponse("Request body too large"))
			return false
		}
		writeJSON(w, r, http.StatusBadRequest, errorResponse("Invalid request body"))
		return false
	}
	return true
}

// writeServiceError maps a service error onto a response. Storage failures
// and anything unexpected are logged and answered with failMsg.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, failMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeJSON(w, r, http.StatusBadRequest, errorResponse(sentence(err.Error())))
	case errors.Is(err, service.ErrPostNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse("Blog post not found"))
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse("User not found"))
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, r, http.StatusUnauthorized, errorResponse(sentence(err.Error())))
	default:
		slog.ErrorContext(r.Context(), failMsg, "error", err, "path", r.URL.Path)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse(failMsg))
	}
}

// sentence upper-cases the first letter of an error string for display.
func sentence(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
