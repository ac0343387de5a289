package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/api/validators"
	"github.com/tahir-sigmadevelopers/multanimango/internal/products"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       string `json:"price"`
}

// AdminProductCreate adds a new catalog listing.
func AdminProductCreate(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := svc.Create(r.Context(), mangoapi.ProductInput{
			Name:        payload.Name,
			Description: payload.Description,
			Image:       payload.Image,
			Price:       payload.Price,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, nil, message)
	}
}

// AdminProductDelete removes a catalog listing; requires ?confirm=true.
func AdminProductDelete(svc *products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		confirmed, err := validators.ParseQueryBool(r, "confirm")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, message, err := svc.Delete(r.Context(), chi.URLParam(r, "productId"), confirmed)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, list, message)
	}
}
