package api

import (
	"github.com/salvodev/portfolio-backend/database"
	"github.com/salvodev/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier *services.ContactNotifier) *routeHandlers {
	return &routeHandlers{
		healthHandler:  newHealthHandler(),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		skillHandler:   newSkillHandler(database.SkillRepo(), database.SkillCategoryRepo()),
		contactHandler: newContactHandler(database.ContactFormRepo(), notifier),
		profileHandler: newProfileHandler(database.ProfessionalInfoRepo()),
	}
}
