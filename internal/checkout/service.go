package checkout

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

const (
	// RedirectPath and RedirectDelayMS tell the storefront where to send the
	// buyer after a placed order, and how long to show the confirmation first.
	RedirectPath    = "/"
	RedirectDelayMS = 2000

	placedMessage = "Order placed successfully! Please send payment screenshot to WhatsApp."
)

type orderCreator interface {
	CreateOrder(ctx context.Context, req mangoapi.OrderRequest) (string, error)
}

// Service validates a checkout form against the session's cart and submits
// the order upstream. The cart is cleared only after the backend confirms.
type Service struct {
	api         orderCreator
	shippingFee decimal.Decimal
	logg        *logger.Logger
}

// Result is the response for a placed order: the confirmation message plus
// the reset form and redirect instructions for the storefront.
type Result struct {
	Message         string `json:"message"`
	Form            Form   `json:"form"`
	RedirectPath    string `json:"redirectPath"`
	RedirectDelayMS int    `json:"redirectDelayMs"`
}

func NewService(api orderCreator, shippingFee decimal.Decimal, logg *logger.Logger) *Service {
	return &Service{api: api, shippingFee: shippingFee, logg: logg}
}

// Submit runs the ordered form validation, places the order, and clears the
// cart on success. Validation failures never reach the network. A failed
// upstream call leaves the cart exactly as it was.
func (s *Service) Submit(ctx context.Context, store *cart.Store, form Form) (*Result, error) {
	if err := validate(form, store); err != nil {
		return nil, err
	}

	lines := store.Lines()
	items := make([]mangoapi.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, mangoapi.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.UnitPrice,
			Image:       line.ImageURL,
		})
	}

	paymentMethod := strings.TrimSpace(form.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	req := mangoapi.OrderRequest{
		CustomerName:    strings.TrimSpace(form.Name),
		CustomerEmail:   strings.TrimSpace(form.Email),
		ShippingAddress: strings.TrimSpace(form.Address),
		City:            strings.TrimSpace(form.City),
		PostalCode:      strings.TrimSpace(form.PostalCode),
		PaymentMethod:   paymentMethod,
		OrderItems:      items,
		TotalAmount:     store.Total(s.shippingFee),
	}

	if _, err := s.api.CreateOrder(ctx, req); err != nil {
		s.logg.Error(ctx, "order submission failed", err)
		return nil, err
	}

	store.Clear()
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"items": len(items),
		"total": req.TotalAmount.String(),
	}), "order placed")

	return &Result{
		Message:         placedMessage,
		Form:            EmptyForm(),
		RedirectPath:    RedirectPath,
		RedirectDelayMS: RedirectDelayMS,
	}, nil
}

// validate applies the fail-fast rules in their fixed order. The first
// failing rule wins and nothing is submitted.
func validate(form Form, store *cart.Store) error {
	switch {
	case strings.TrimSpace(form.Name) == "":
		return invalid("Please enter your full name")
	case strings.TrimSpace(form.Email) == "":
		return invalid("Please enter your email")
	case !strings.Contains(form.Email, "@"):
		return invalid("Please enter a valid email address")
	case strings.TrimSpace(form.Address) == "":
		return invalid("Please enter your shipping address")
	case strings.TrimSpace(form.City) == "":
		return invalid("Please enter your city")
	case strings.TrimSpace(form.PostalCode) == "":
		return invalid("Please enter your postal code")
	case store.IsEmpty():
		return invalid("Your cart is empty. Add some items first!")
	}
	return nil
}

func invalid(message string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, message)
}
