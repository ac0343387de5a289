package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
)

// MinQuantity and DefaultMaxQuantity bound the quantity of a single line.
const (
	MinQuantity        = 1
	DefaultMaxQuantity = 10
)

// Store owns the cart contents for one session. It is the single source of
// truth: nothing else mutates the lines. All operations return the one
// user-visible message they produced.
type Store struct {
	mu     sync.Mutex
	lines  []*Line
	index  map[string]*Line
	maxQty int
}

// NewStore builds an empty cart with the given per-line quantity cap.
func NewStore(maxQty int) *Store {
	if maxQty < MinQuantity {
		maxQty = DefaultMaxQuantity
	}
	return &Store{
		index:  make(map[string]*Line),
		maxQty: maxQty,
	}
}

// Add inserts the product with quantity 1, or increments an existing line.
// An increment past the cap is rejected and the line is left unchanged.
func (s *Store) Add(product Product) (string, error) {
	if product.ID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.index[product.ID]; ok {
		if line.Quantity >= s.maxQty {
			return "", pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Maximum quantity allowed is %d", s.maxQty))
		}
		line.Quantity++
		return fmt.Sprintf("%s quantity increased!", line.Name), nil
	}

	line := &Line{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     product.UnitPrice,
		Quantity:      1,
		ImageURL:      product.ImageURL,
		OriginalPrice: product.OriginalPrice,
		Variation:     product.Variation,
	}
	s.lines = append(s.lines, line)
	s.index[product.ID] = line
	return fmt.Sprintf("%s added to cart!", line.Name), nil
}

// Remove deletes the line if present and is a no-op otherwise.
func (s *Store) Remove(productID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.index[productID]
	if !ok {
		return "Item removed from cart!"
	}
	delete(s.index, productID)
	for i, l := range s.lines {
		if l.ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return fmt.Sprintf("%s removed from cart!", line.Name)
}

// UpdateQuantity replaces the line's quantity. Out-of-range requests fail
// and leave the line untouched.
func (s *Store) UpdateQuantity(productID string, quantity int) (string, error) {
	if quantity < MinQuantity {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Quantity cannot be less than 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity > s.maxQty {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Maximum quantity allowed is %d", s.maxQty))
	}

	line, ok := s.index[productID]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "Item not found in cart")
	}
	line.Quantity = quantity
	return fmt.Sprintf("Updated %s quantity to %d", line.Name, quantity), nil
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.index = make(map[string]*Line)
}

// Lines returns a snapshot of the cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, 0, len(s.lines))
	for _, line := range s.lines {
		out = append(out, *line)
	}
	return out
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// TotalItems is the sum of all line quantities, recomputed on every read.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity over all lines.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := decimal.Zero
	for _, line := range s.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}

// Total is the subtotal plus the flat shipping fee.
func (s *Store) Total(shippingFee decimal.Decimal) decimal.Decimal {
	return s.Subtotal().Add(shippingFee)
}
