package cart

import "github.com/shopspring/decimal"

// Product is the catalog snapshot Add copies into a line. The cart never
// holds a reference back into the catalog.
type Product struct {
	ID            string
	Name          string
	UnitPrice     decimal.Decimal
	OriginalPrice *decimal.Decimal
	Variation     string
	ImageURL      string
}

// Line is one product entry in the cart with its quantity. Lines are unique
// by ProductID and keep their insertion order for display.
type Line struct {
	ProductID     string           `json:"productId"`
	Name          string           `json:"name"`
	UnitPrice     decimal.Decimal  `json:"unitPrice"`
	Quantity      int              `json:"quantity"`
	ImageURL      string           `json:"imageUrl"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Variation     string           `json:"variation,omitempty"`
}

// LineTotal returns unit price times quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
