package checkout

// DefaultPaymentMethod is the only payment channel currently offered.
const DefaultPaymentMethod = "JazzCash"

// Form carries the buyer's shipping details for one checkout attempt.
type Form struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	PaymentMethod string `json:"paymentMethod"`
}

// EmptyForm is the reset state returned after a successful order.
func EmptyForm() Form {
	return Form{PaymentMethod: DefaultPaymentMethod}
}
