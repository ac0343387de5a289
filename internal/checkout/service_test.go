package checkout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type stubOrderCreator struct {
	calls int
	last  mangoapi.OrderRequest
	err   error
}

func (s *stubOrderCreator) CreateOrder(ctx context.Context, req mangoapi.OrderRequest) (string, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return "", s.err
	}
	return "Order created", nil
}

func validForm() Form {
	return Form{
		Name:       "Ahmed Khan",
		Email:      "ahmed@example.com",
		Address:    "House 12, Street 4",
		City:       "Multan",
		PostalCode: "60000",
	}
}

func loadedCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore(cart.DefaultMaxQuantity)
	_, err := store.Add(cart.Product{ID: "m1", Name: "Chaunsa", UnitPrice: decimal.NewFromInt(1500)})
	require.NoError(t, err)
	_, err = store.Add(cart.Product{ID: "m1", Name: "Chaunsa", UnitPrice: decimal.NewFromInt(1500)})
	require.NoError(t, err)
	_, err = store.Add(cart.Product{ID: "m2", Name: "Langra", UnitPrice: decimal.NewFromInt(500)})
	require.NoError(t, err)
	return store
}

func newTestService(api *stubOrderCreator) *Service {
	return NewService(api, decimal.NewFromInt(500), logger.New(logger.Options{ServiceName: "test"}))
}

func TestSubmitPlacesOrderAndClearsCart(t *testing.T) {
	api := &stubOrderCreator{}
	svc := newTestService(api)
	store := loadedCart(t)

	result, err := svc.Submit(context.Background(), store, validForm())
	require.NoError(t, err)
	require.Equal(t, 1, api.calls)

	// 1500*2 + 500*1 + 500 shipping
	require.True(t, api.last.TotalAmount.Equal(decimal.NewFromInt(4000)),
		"total was %s", api.last.TotalAmount)
	require.Len(t, api.last.OrderItems, 2)
	require.Equal(t, DefaultPaymentMethod, api.last.PaymentMethod)

	require.True(t, store.IsEmpty(), "cart must be cleared after a placed order")
	require.Equal(t, placedMessage, result.Message)
	require.Equal(t, EmptyForm(), result.Form)
	require.Equal(t, "/", result.RedirectPath)
	require.Equal(t, 2000, result.RedirectDelayMS)
}

func TestSubmitValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Form)
		message string
	}{
		{"missing name", func(f *Form) { f.Name = "  " }, "Please enter your full name"},
		{"missing email", func(f *Form) { f.Email = "" }, "Please enter your email"},
		{"email without at sign", func(f *Form) { f.Email = "abc" }, "Please enter a valid email address"},
		{"missing address", func(f *Form) { f.Address = "" }, "Please enter your shipping address"},
		{"missing city", func(f *Form) { f.City = "" }, "Please enter your city"},
		{"missing postal code", func(f *Form) { f.PostalCode = "" }, "Please enter your postal code"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &stubOrderCreator{}
			svc := newTestService(api)
			store := loadedCart(t)

			form := validForm()
			tc.mutate(&form)

			_, err := svc.Submit(context.Background(), store, form)
			require.Error(t, err)

			apiErr := pkgerrors.As(err)
			require.NotNil(t, apiErr)
			require.Equal(t, pkgerrors.CodeValidation, apiErr.Code())
			require.Equal(t, tc.message, apiErr.Message())
			require.Equal(t, 0, api.calls, "validation failures must never reach the network")
			require.False(t, store.IsEmpty(), "cart must be untouched on validation failure")
		})
	}
}

func TestSubmitEmptyCartRejectedBeforeNetwork(t *testing.T) {
	api := &stubOrderCreator{}
	svc := newTestService(api)
	store := cart.NewStore(cart.DefaultMaxQuantity)

	_, err := svc.Submit(context.Background(), store, validForm())
	require.Error(t, err)
	require.Equal(t, "Your cart is empty. Add some items first!", pkgerrors.As(err).Message())
	require.Equal(t, 0, api.calls)
}

func TestSubmitFirstFailingRuleWins(t *testing.T) {
	// name and email both invalid: the name message must win
	api := &stubOrderCreator{}
	svc := newTestService(api)
	store := loadedCart(t)

	form := validForm()
	form.Name = ""
	form.Email = "abc"

	_, err := svc.Submit(context.Background(), store, form)
	require.Error(t, err)
	require.Equal(t, "Please enter your full name", pkgerrors.As(err).Message())
}

func TestSubmitUpstreamFailureLeavesCartIntact(t *testing.T) {
	api := &stubOrderCreator{err: pkgerrors.New(pkgerrors.CodeUpstream, "Something went wrong. Please try again.")}
	svc := newTestService(api)
	store := loadedCart(t)

	_, err := svc.Submit(context.Background(), store, validForm())
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeUpstream, pkgerrors.As(err).Code())
	require.Equal(t, 3, store.TotalItems(), "failed submission must not clear the cart")
}
