package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type stubOrderAPI struct {
	orders  []mangoapi.Order
	listErr error

	updates   []mangoapi.StatusUpdate
	updateErr error

	deleted   []string
	deleteErr error
}

func (s *stubOrderAPI) ListOrders(ctx context.Context) ([]mangoapi.Order, error) {
	return s.orders, s.listErr
}

func (s *stubOrderAPI) UpdateOrderStatus(ctx context.Context, id string, update mangoapi.StatusUpdate) error {
	s.updates = append(s.updates, update)
	return s.updateErr
}

func (s *stubOrderAPI) DeleteOrder(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

func newTestService(api *stubOrderAPI) *Service {
	return NewService(api, logger.New(logger.Options{ServiceName: "test"}))
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc := newTestService(&stubOrderAPI{})
	orders, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, orders)
	require.Empty(t, orders)
}

func TestUpdateStatusRefetchesList(t *testing.T) {
	api := &stubOrderAPI{orders: []mangoapi.Order{{ID: "o1", OrderStatus: "shipped"}}}
	svc := newTestService(api)

	orders, msg, err := svc.UpdateStatus(context.Background(), "o1", "shipped")
	require.NoError(t, err)
	require.Len(t, api.updates, 1)
	require.NotNil(t, api.updates[0].OrderStatus)
	require.Equal(t, "shipped", *api.updates[0].OrderStatus)
	require.Nil(t, api.updates[0].PaymentStatus, "order status update must not touch payment status")
	require.Len(t, orders, 1)
	require.Equal(t, "Order status updated to shipped", msg)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	// delivered back to pending is allowed; there is no transition table
	api := &stubOrderAPI{orders: []mangoapi.Order{{ID: "o1"}}}
	svc := newTestService(api)

	_, _, err := svc.UpdateStatus(context.Background(), "o1", "pending")
	require.NoError(t, err)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	api := &stubOrderAPI{}
	svc := newTestService(api)

	_, _, err := svc.UpdateStatus(context.Background(), "o1", "teleported")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	require.Empty(t, api.updates, "invalid status must never reach the backend")
}

func TestUpdateStatusFailureReturnsNoList(t *testing.T) {
	api := &stubOrderAPI{updateErr: pkgerrors.New(pkgerrors.CodeUpstream, "boom")}
	svc := newTestService(api)

	orders, _, err := svc.UpdateStatus(context.Background(), "o1", "confirmed")
	require.Error(t, err)
	require.Nil(t, orders, "a failed update must not replace the caller's list")
}

func TestUpdatePaymentStatus(t *testing.T) {
	api := &stubOrderAPI{orders: []mangoapi.Order{{ID: "o1"}}}
	svc := newTestService(api)

	_, msg, err := svc.UpdatePaymentStatus(context.Background(), "o1", "paid")
	require.NoError(t, err)
	require.Len(t, api.updates, 1)
	require.Nil(t, api.updates[0].OrderStatus)
	require.NotNil(t, api.updates[0].PaymentStatus)
	require.Equal(t, "paid", *api.updates[0].PaymentStatus)
	require.Equal(t, "Payment status updated to paid", msg)
}

func TestUpdatePaymentStatusRejectsUnknownValue(t *testing.T) {
	svc := newTestService(&stubOrderAPI{})
	_, _, err := svc.UpdatePaymentStatus(context.Background(), "o1", "maybe")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	api := &stubOrderAPI{}
	svc := newTestService(api)

	_, _, err := svc.Delete(context.Background(), "o1", false)
	require.Error(t, err)
	require.Equal(t, "Deletion requires confirmation", pkgerrors.As(err).Message())
	require.Empty(t, api.deleted)
}

func TestDeleteRefetchesList(t *testing.T) {
	api := &stubOrderAPI{orders: []mangoapi.Order{}}
	svc := newTestService(api)

	orders, msg, err := svc.Delete(context.Background(), "o1", true)
	require.NoError(t, err)
	require.Equal(t, []string{"o1"}, api.deleted)
	require.NotNil(t, orders)
	require.Equal(t, "Order deleted successfully", msg)
}
