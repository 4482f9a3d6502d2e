package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salvodev/portfolio-backend/database"
	"github.com/salvodev/portfolio-backend/validate"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	infoRepo  *database.ProfessionalInfoRepo
}

func newProfileHandler(infoRepo *database.ProfessionalInfoRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		infoRepo:  infoRepo,
	}
}

// getProfessionalInfo returns the singleton about-section row, or JSON null
// when none exists yet. An empty table is a valid state, not an error.
func (h profileHandler) getProfessionalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.infoRepo.Current()
		if err != nil {
			h.responder.WriteError(w, storeError("find", "professional info", err))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// updateProfessionalInfo merges the supplied fields onto the singleton row and
// always bumps updated_at, even for an empty partial. Never auto-creates.
func (h profileHandler) updateProfessionalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input validate.UpdateProfessionalInfoInput
		if err := decodeInput(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		info, err := h.infoRepo.UpdateFields(input.Fields())
		if err != nil {
			h.responder.WriteError(w, storeError("update", "professional info", err))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}
