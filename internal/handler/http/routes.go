package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router: trace IDs and request logging wrap everything,
// the auth group additionally verifies the bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes guarded by the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user/profile", h.getProfile)
		r.Put("/api/user/profile", h.updateProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
