package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/folio/folio-go/internal/middleware"
	"github.com/folio/folio-go/internal/service"
	"github.com/folio/folio-go/internal/showcase"
)

// Login attempts allowed per client IP: sustained rate and burst.
const (
	loginRate  = 0.2
	loginBurst = 5
)

// Deps lists everything the router needs. Every service must be set.
type Deps struct {
	Auth     *service.AuthService
	Blog     *service.BlogService
	Projects *service.ProjectService
	Contact  *service.ContactService
	Showcase *showcase.Tiered

	Authorizer middleware.Authorizer
	Logger     *slog.Logger

	// Contact form submissions per client IP.
	ContactRate  float64
	ContactBurst int
}

// NewRouter builds the HTTP API.
func NewRouter(d Deps) chi.Router {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	auth := NewAuthHandler(d.Auth)
	blog := NewBlogHandler(d.Blog)
	projects := NewProjectHandler(d.Projects)
	contact := NewContactHandler(d.Contact)
	show := NewShowcaseHandler(d.Showcase)
	requireAuth := middleware.RequireAuth(d.Authorizer)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, errorResponse("Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, errorResponse("Method not allowed"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(loginRate, loginBurst)).Post("/login", auth.HandleLogin)
			r.With(requireAuth).Get("/me", auth.HandleMe)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", blog.HandleList)
			r.Get("/{slug}", blog.HandleGet)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", blog.HandleCreate)
				r.Put("/{slug}", blog.HandleUpdate)
				r.Delete("/{slug}", blog.HandleDelete)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.HandleList)
			r.With(requireAuth).Post("/", projects.HandleCreate)
		})

		r.Route("/contact", func(r chi.Router) {
			r.With(middleware.RateLimit(d.ContactRate, d.ContactBurst)).Post("/", contact.HandleSubmit)
			r.With(requireAuth).Get("/", contact.HandleList)
		})

		r.Route("/showcase", func(r chi.Router) {
			r.Get("/blog", show.HandlePosts)
			r.Get("/projects", show.HandleProjects)
		})
	})

	return r
}
