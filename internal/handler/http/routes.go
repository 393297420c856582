package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/login", h.login)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/protocols", func(r chi.Router) {
				r.Get("/", h.listProtocols)
				r.Post("/", h.createProtocol)
				r.Get("/export", h.exportProtocols)
				r.Delete("/{id}", h.deleteProtocol)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Put("/{id}", h.updateUser)
				r.Delete("/{id}", h.deleteUser)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
