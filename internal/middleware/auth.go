package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/folio/folio-go/internal/crypto"
)

type contextKey string

const principalKey contextKey = "principal"

var (
	ErrMissingCredentials   = errors.New("missing authorization header")
	ErrMalformedCredentials = errors.New("invalid authorization format")
)

// Principal identifies the authenticated operator of a request.
type Principal struct {
	UserID string
}

// Authorizer decides whether a request may reach an operator-only route.
type Authorizer interface {
	Authorize(r *http.Request) (Principal, error)
}

// JWTAuthorizer accepts HS256 bearer tokens issued by crypto.GenerateToken.
type JWTAuthorizer struct {
	Secret string
}

func (a JWTAuthorizer) Authorize(r *http.Request) (Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Principal{}, ErrMissingCredentials
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return Principal{}, ErrMalformedCredentials
	}

	claims, err := crypto.ValidateToken(token, a.Secret)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: claims.UserID}, nil
}

// RequireAuth rejects requests the Authorizer does not accept with 401 and
// stores the Principal on the context of those it does.
func RequireAuth(a Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := a.Authorize(r)
			if err != nil {
				writeJSONError(w, r, http.StatusUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext extracts the authenticated operator from ctx.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok && p.UserID != ""
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, render.M{"error": msg})
}
