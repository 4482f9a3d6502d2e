package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salvodev/portfolio-backend/database"
	"github.com/salvodev/portfolio-backend/validate"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getProjects returns every project ordered by display_order (insertion order
// breaks ties)
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, storeError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// createProject validates the input and inserts a new project row
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input validate.CreateProjectInput
		if err := decodeInput(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := input.Model()
		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, storeError("create", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject applies only the supplied fields to an existing project and
// returns the full updated row
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input validate.UpdateProjectInput
		if err := decodeInput(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.UpdateFields(input.ID, input.Fields())
		if err != nil {
			h.responder.WriteError(w, storeError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}
