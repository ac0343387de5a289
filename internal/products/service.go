package products

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type productAPI interface {
	ListProducts(ctx context.Context) ([]mangoapi.Product, error)
	SaveProduct(ctx context.Context, input mangoapi.ProductInput) (string, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Service is the admin catalog manager: create and delete listings. Reads
// for the storefront live in the catalog package.
type Service struct {
	api  productAPI
	logg *logger.Logger
}

func NewService(api productAPI, logg *logger.Logger) *Service {
	return &Service{api: api, logg: logg}
}

// Create validates a new listing and saves it upstream. All fields are
// required; the price must be a positive decimal.
func (s *Service) Create(ctx context.Context, input mangoapi.ProductInput) (string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Image = strings.TrimSpace(input.Image)
	input.Price = strings.TrimSpace(input.Price)

	if input.Name == "" || input.Description == "" || input.Image == "" || input.Price == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Please fill all fields and upload an image")
	}
	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() || price.IsZero() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Price must be a positive number")
	}

	if _, err := s.api.SaveProduct(ctx, input); err != nil {
		s.logg.Error(ctx, "failed to save product", err)
		return "", err
	}
	return "Mango added successfully!", nil
}

// Delete removes a listing after explicit confirmation and returns the
// refreshed catalog.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) ([]mangoapi.Product, string, error) {
	if strings.TrimSpace(id) == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if !confirmed {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "Deletion requires confirmation")
	}

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		s.logg.Error(ctx, "failed to delete product", err)
		return nil, "", err
	}

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, "", err
	}
	if products == nil {
		products = []mangoapi.Product{}
	}
	return products, "Mango deleted successfully!", nil
}
