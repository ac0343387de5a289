package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/tahir-sigmadevelopers/multanimango/pkg/enums"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type orderAPI interface {
	ListOrders(ctx context.Context) ([]mangoapi.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, update mangoapi.StatusUpdate) error
	DeleteOrder(ctx context.Context, id string) error
}

// Service is the admin order manager. Every mutation re-fetches the full
// list from the backend, so the caller always renders server truth; a failed
// mutation returns no list and the previous one stays on screen.
type Service struct {
	api  orderAPI
	logg *logger.Logger
}

func NewService(api orderAPI, logg *logger.Logger) *Service {
	return &Service{api: api, logg: logg}
}

// List returns every order, in the backend's sort order.
func (s *Service) List(ctx context.Context) ([]mangoapi.Order, error) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		s.logg.Error(ctx, "failed to list orders", err)
		return nil, err
	}
	if orders == nil {
		orders = []mangoapi.Order{}
	}
	return orders, nil
}

// UpdateStatus sets the fulfilment status of one order. Any valid status can
// follow any other; the backend owns no transition rules and neither do we.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) ([]mangoapi.Order, string, error) {
	if strings.TrimSpace(id) == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	parsed, err := enums.ParseOrderStatus(status)
	if err != nil {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", status))
	}

	value := parsed.String()
	if err := s.api.UpdateOrderStatus(ctx, id, mangoapi.StatusUpdate{OrderStatus: &value}); err != nil {
		s.logg.Error(ctx, "failed to update order status", err)
		return nil, "", err
	}

	orders, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}
	return orders, fmt.Sprintf("Order status updated to %s", value), nil
}

// UpdatePaymentStatus sets the payment status of one order.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id, status string) ([]mangoapi.Order, string, error) {
	if strings.TrimSpace(id) == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	parsed, err := enums.ParsePaymentStatus(status)
	if err != nil {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid payment status %q", status))
	}

	value := parsed.String()
	if err := s.api.UpdateOrderStatus(ctx, id, mangoapi.StatusUpdate{PaymentStatus: &value}); err != nil {
		s.logg.Error(ctx, "failed to update payment status", err)
		return nil, "", err
	}

	orders, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}
	return orders, fmt.Sprintf("Payment status updated to %s", value), nil
}

// Delete removes an order after explicit confirmation and returns the
// refreshed list.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) ([]mangoapi.Order, string, error) {
	if strings.TrimSpace(id) == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !confirmed {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "Deletion requires confirmation")
	}

	if err := s.api.DeleteOrder(ctx, id); err != nil {
		s.logg.Error(ctx, "failed to delete order", err)
		return nil, "", err
	}

	orders, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}
	return orders, "Order deleted successfully", nil
}
