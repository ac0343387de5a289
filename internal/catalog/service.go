package catalog

import (
	"context"
	"strings"

	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type productReader interface {
	ListProducts(ctx context.Context) ([]mangoapi.Product, error)
	GetProduct(ctx context.Context, id string) (*mangoapi.Product, error)
}

// Service reads the catalog from the store backend. The catalog is never
// cached here: the backend owns product data and prices.
type Service struct {
	api  productReader
	logg *logger.Logger
}

func NewService(api productReader, logg *logger.Logger) *Service {
	return &Service{api: api, logg: logg}
}

// List returns every product in the catalog.
func (s *Service) List(ctx context.Context) ([]mangoapi.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.logg.Error(ctx, "failed to list products", err)
		return nil, err
	}
	if products == nil {
		products = []mangoapi.Product{}
	}
	return products, nil
}

// Get returns a single product by ID.
func (s *Service) Get(ctx context.Context, id string) (*mangoapi.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// AsCartProduct converts a catalog entry into the snapshot the cart stores.
func AsCartProduct(p mangoapi.Product) cart.Product {
	return cart.Product{
		ID:            p.ID,
		Name:          p.Name,
		UnitPrice:     p.Price,
		OriginalPrice: p.OriginalPrice,
		Variation:     p.Variation,
		ImageURL:      p.Image.URL,
	}
}
