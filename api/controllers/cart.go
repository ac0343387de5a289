package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tahir-sigmadevelopers/multanimango/api/middleware"
	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/api/validators"
	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	"github.com/tahir-sigmadevelopers/multanimango/internal/catalog"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

// cartView is the cart as the storefront renders it: lines plus every
// derived total, recomputed on each read.
type cartView struct {
	Items       []cart.Line     `json:"items"`
	TotalItems  int             `json:"totalItems"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Total       decimal.Decimal `json:"total"`
}

func newCartView(store *cart.Store, shippingFee decimal.Decimal) cartView {
	return cartView{
		Items:       store.Lines(),
		TotalItems:  store.TotalItems(),
		Subtotal:    store.Subtotal(),
		ShippingFee: shippingFee,
		Total:       store.Total(shippingFee),
	}
}

func sessionStore(r *http.Request, registry *cart.Registry) (*cart.Store, error) {
	sessionID := middleware.CartSessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing")
	}
	return registry.Get(sessionID), nil
}

// CartFetch returns the session's cart with derived totals.
func CartFetch(registry *cart.Registry, shippingFee decimal.Decimal, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(store, shippingFee))
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// CartAddItem adds one unit of a catalog product to the session's cart.
// The product is fetched from the backend so the cart stores real prices,
// never client-supplied ones.
func CartAddItem(registry *cart.Registry, catalogSvc *catalog.Service, shippingFee decimal.Decimal, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.Get(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := store.Add(catalog.AsCartProduct(*product))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, newCartView(store, shippingFee), message)
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartUpdateItem sets the quantity of an existing line.
func CartUpdateItem(registry *cart.Registry, shippingFee decimal.Decimal, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := store.UpdateQuantity(chi.URLParam(r, "productId"), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, newCartView(store, shippingFee), message)
	}
}

// CartRemoveItem deletes a line from the cart.
func CartRemoveItem(registry *cart.Registry, shippingFee decimal.Decimal, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message := store.Remove(chi.URLParam(r, "productId"))
		responses.WriteSuccessMessage(w, newCartView(store, shippingFee), message)
	}
}

// CartClear empties the session's cart.
func CartClear(registry *cart.Registry, shippingFee decimal.Decimal, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear()
		responses.WriteSuccessMessage(w, newCartView(store, shippingFee), "Cart cleared")
	}
}
