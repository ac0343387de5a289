package controllers

import (
	"net/http"

	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/api/validators"
	"github.com/tahir-sigmadevelopers/multanimango/internal/contacts"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type contactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	WhatsappNo string `json:"whatsappNo"`
	Message    string `json:"message"`
}

// ContactSubmit forwards a storefront contact-form message upstream.
func ContactSubmit(svc *contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var payload contactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := svc.Submit(r.Context(), mangoapi.ContactRequest{
			Name:       payload.Name,
			Email:      payload.Email,
			WhatsappNo: payload.WhatsappNo,
			Message:    payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, nil, message)
	}
}
