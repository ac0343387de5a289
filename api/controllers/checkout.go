package controllers

import (
	"net/http"

	"github.com/tahir-sigmadevelopers/multanimango/api/middleware"
	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/api/validators"
	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	"github.com/tahir-sigmadevelopers/multanimango/internal/checkout"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

// Checkout submits the session's cart as an order. Field-level validation
// lives in the checkout service so its message order is preserved; the
// decoder only rejects malformed JSON here.
func Checkout(svc *checkout.Service, registry *cart.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.CartSessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		var form checkout.Form
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), registry.Get(sessionID), form)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, result, result.Message)
	}
}
