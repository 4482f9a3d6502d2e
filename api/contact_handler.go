package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salvodev/portfolio-backend/database"
	"github.com/salvodev/portfolio-backend/services"
	"github.com/salvodev/portfolio-backend/validate"
)

type contactHandler struct {
	responder       Responder
	logger          zerolog.Logger
	contactFormRepo *database.ContactFormRepo
	notifier        *services.ContactNotifier
}

func newContactHandler(contactFormRepo *database.ContactFormRepo, notifier *services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		contactFormRepo: contactFormRepo,
		notifier:        notifier,
	}
}

// submitContactForm validates and stores an inbound message. Resubmitting
// identical content creates a new row; there is no idempotency key.
func (h contactHandler) submitContactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input validate.CreateContactFormInput
		if err := decodeInput(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form := input.Model()
		if err := h.contactFormRepo.Add(form); err != nil {
			h.responder.WriteError(w, storeError("create", "contact form", err))
			return
		}

		// Best-effort notification; a delivery failure never reaches the submitter
		if h.notifier != nil {
			go func(n *services.ContactNotification) {
				if err := h.notifier.Notify(n); err != nil {
					h.logger.Error().Err(err).Msg("Failed to send contact notification")
				}
			}(&services.ContactNotification{
				Name:    form.Name,
				Email:   form.Email,
				Subject: form.Subject,
				Message: form.Message,
			})
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, form)
	}
}

// getContactForms returns every submission newest first for admin review
func (h contactHandler) getContactForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms, err := h.contactFormRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, storeError("find", "contact forms", err))
			return
		}

		h.responder.WriteJSON(w, forms)
	}
}
