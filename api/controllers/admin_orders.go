package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahir-sigmadevelopers/multanimango/api/responses"
	"github.com/tahir-sigmadevelopers/multanimango/api/validators"
	"github.com/tahir-sigmadevelopers/multanimango/internal/orders"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
)

// AdminOrderList serves the full order list for the admin panel.
func AdminOrderList(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
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

type orderStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

// AdminOrderUpdateStatus patches one order's fulfilment or payment status
// and returns the re-fetched list. Exactly one of the two fields must be set.
func AdminOrderUpdateStatus(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID := chi.URLParam(r, "orderId")

		var (
			list    any
			message string
			err     error
		)
		switch {
		case payload.OrderStatus != "" && payload.PaymentStatus != "":
			err = pkgerrors.New(pkgerrors.CodeValidation, "set either orderStatus or paymentStatus, not both")
		case payload.OrderStatus != "":
			list, message, err = svc.UpdateStatus(r.Context(), orderID, payload.OrderStatus)
		case payload.PaymentStatus != "":
			list, message, err = svc.UpdatePaymentStatus(r.Context(), orderID, payload.PaymentStatus)
		default:
			err = pkgerrors.New(pkgerrors.CodeValidation, "orderStatus or paymentStatus is required")
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, list, message)
	}
}

// AdminOrderDelete removes an order; the client must pass ?confirm=true.
func AdminOrderDelete(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		confirmed, err := validators.ParseQueryBool(r, "confirm")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, message, err := svc.Delete(r.Context(), chi.URLParam(r, "orderId"), confirmed)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, list, message)
	}
}
