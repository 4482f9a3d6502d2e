package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salvodev/portfolio-backend/database"
	"github.com/salvodev/portfolio-backend/errs"
	"github.com/salvodev/portfolio-backend/models"
	"github.com/salvodev/portfolio-backend/validate"
)

type skillHandler struct {
	responder    Responder
	logger       zerolog.Logger
	skillRepo    *database.SkillRepo
	categoryRepo *database.SkillCategoryRepo
}

func newSkillHandler(skillRepo *database.SkillRepo, categoryRepo *database.SkillCategoryRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		skillRepo:    skillRepo,
		categoryRepo: categoryRepo,
	}
}

// SkillsResponse carries the two ordered collections side by side. Grouping
// skills under their categories is left to the presentation layer.
type SkillsResponse struct {
	Categories []models.SkillCategory `json:"categories"`
	Skills     []models.Skill         `json:"skills"`
}

// getSkills returns all categories and all skills, each ordered by display_order
func (h skillHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, storeError("find", "skill categories", err))
			return
		}

		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, storeError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, SkillsResponse{Categories: categories, Skills: skills})
	}
}

// createSkill validates the input, checks the referenced category exists, and
// inserts the skill. A dangling category_id fails before any row is written.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input validate.CreateSkillInput
		if err := decodeInput(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		exists, err := h.categoryRepo.Exists(input.CategoryID)
		if err != nil {
			h.responder.WriteError(w, storeError("find", "skill category", err))
			return
		}
		if !exists {
			h.responder.WriteError(w, errs.NewInvalidReference("skill category", input.CategoryID))
			return
		}

		skill := input.Model()
		if err := h.skillRepo.Add(skill); err != nil {
			h.responder.WriteError(w, storeError("create", "skill", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, skill)
	}
}
