package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/api/validators"
	"github.com/tahir-sigmadevelopers/multanimango/internal/contacts"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

// AdminContactList serves the contact inbox.
func AdminContactList(svc *contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contacts service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminContactDelete removes a contact message; requires ?confirm=true.
func AdminContactDelete(svc *contacts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contacts service unavailable"))
			return
		}

		confirmed, err := validators.ParseQueryBool(r, "confirm")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, message, err := svc.Delete(r.Context(), chi.URLParam(r, "contactId"), confirmed)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, list, message)
	}
}
