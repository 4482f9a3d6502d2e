package api

import (
	"github.com/go-chi/chi/v5"
)

// setupOperationRoutes mounts the nine operations (plus healthcheck) as named
// procedures under a single /rpc endpoint: queries are GETs, mutations are
// POSTs carrying one JSON input object.
func setupOperationRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/rpc", func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/healthcheck", handlers.healthHandler.healthcheck())

		// Project operations
		r.Get("/getProjects", handlers.projectHandler.getProjects())
		r.Post("/createProject", handlers.projectHandler.createProject())
		r.Post("/updateProject", handlers.projectHandler.updateProject())

		// Skill operations
		r.Get("/getSkills", handlers.skillHandler.getSkills())
		r.Post("/createSkill", handlers.skillHandler.createSkill())

		// Contact form operations
		r.Post("/submitContactForm", handlers.contactHandler.submitContactForm())
		r.Get("/getContactForms", handlers.contactHandler.getContactForms())

		// Professional info operations
		r.Get("/getProfessionalInfo", handlers.profileHandler.getProfessionalInfo())
		r.Post("/updateProfessionalInfo", handlers.profileHandler.updateProfessionalInfo())
	})
}
