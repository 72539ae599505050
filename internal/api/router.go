package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/presentwallah/engine/internal/api/handlers"
	mw "github.com/presentwallah/engine/internal/api/middleware"
)

type Dependencies struct {
	HMACSecret      []byte
	HealthHandler   *handlers.HealthHandler
	AuthHandler     *handlers.AuthHandler
	ProjectsHandler *handlers.ProjectsHandler
	SectionsHandler *handlers.SectionsHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		// Auth routes (public)
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
		})

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.HMACSecret))

			protected.Route("/projects", func(pr chi.Router) {
				pr.Get("/", dep.ProjectsHandler.List)
				pr.Post("/", dep.ProjectsHandler.Create)
				pr.Get("/{id}", dep.ProjectsHandler.Get)
				pr.Put("/{id}", dep.ProjectsHandler.Update)
				pr.Delete("/{id}", dep.ProjectsHandler.Delete)
				pr.Post("/{id}/generate", dep.ProjectsHandler.Generate)
				pr.Get("/{id}/export", dep.ProjectsHandler.Export)
			})

			protected.Route("/sections", func(sr chi.Router) {
				sr.Put("/{id}", dep.SectionsHandler.Update)
				sr.Post("/{id}/refine", dep.SectionsHandler.Refine)
				sr.Get("/{id}/revisions", dep.SectionsHandler.Revisions)
			})

			protected.Post("/outline", dep.ProjectsHandler.Outline)
		})
	})

	return r
}
