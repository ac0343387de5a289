package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tahir-sigmadevelopers/multanimango/api/middleware"
	"github.com/tahir-sigmadevelopers/multanimango/internal/cart"
	"github.com/tahir-sigmadevelopers/multanimango/internal/catalog"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

type stubCatalogAPI struct {
	products []mangoapi.Product
	err      error
}

func (s stubCatalogAPI) ListProducts(ctx context.Context) ([]mangoapi.Product, error) {
	return s.products, s.err
}

func (s stubCatalogAPI) GetProduct(ctx context.Context, id string) (*mangoapi.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test"})
}

func chaunsaProduct() mangoapi.Product {
	return mangoapi.Product{
		ID:    "m1",
		Name:  "Chaunsa",
		Price: decimal.NewFromInt(1500),
		Image: mangoapi.ProductImage{URL: "https://img.example/chaunsa.jpg"},
	}
}

func cartRouter(registry *cart.Registry, catalogSvc *catalog.Service) http.Handler {
	fee := decimal.NewFromInt(500)
	logg := testLogger()
	r := chi.NewRouter()
	r.Get("/cart", CartFetch(registry, fee, logg))
	r.Post("/cart/items", CartAddItem(registry, catalogSvc, fee, logg))
	r.Patch("/cart/items/{productId}", CartUpdateItem(registry, fee, logg))
	r.Delete("/cart/items/{productId}", CartRemoveItem(registry, fee, logg))
	r.Delete("/cart", CartClear(registry, fee, logg))
	return r
}

func doCartRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = req.WithContext(middleware.WithCartSessionID(req.Context(), "session-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

type cartEnvelope struct {
	Data    cartView `json:"data"`
	Message string   `json:"message"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var envelope cartEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestCartAddItemReturnsMessageAndTotals(t *testing.T) {
	registry := cart.NewRegistry(cart.DefaultMaxQuantity, 0, nil)
	catalogSvc := catalog.NewService(stubCatalogAPI{products: []mangoapi.Product{chaunsaProduct()}}, testLogger())
	handler := cartRouter(registry, catalogSvc)

	rec := doCartRequest(t, handler, http.MethodPost, "/cart/items", `{"productId":"m1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeCart(t, rec)
	if envelope.Message != "Chaunsa added to cart!" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
	if envelope.Data.TotalItems != 1 {
		t.Fatalf("expected 1 item, got %d", envelope.Data.TotalItems)
	}
	if !envelope.Data.Total.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected total 2000, got %s", envelope.Data.Total)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	registry := cart.NewRegistry(cart.DefaultMaxQuantity, 0, nil)
	catalogSvc := catalog.NewService(stubCatalogAPI{}, testLogger())
	handler := cartRouter(registry, catalogSvc)

	rec := doCartRequest(t, handler, http.MethodPost, "/cart/items", `{"productId":"ghost"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	// the cart must be untouched
	rec = doCartRequest(t, handler, http.MethodGet, "/cart", "")
	if envelope := decodeCart(t, rec); envelope.Data.TotalItems != 0 {
		t.Fatalf("expected empty cart, got %d items", envelope.Data.TotalItems)
	}
}

func TestCartUpdateQuantityBounds(t *testing.T) {
	registry := cart.NewRegistry(cart.DefaultMaxQuantity, 0, nil)
	catalogSvc := catalog.NewService(stubCatalogAPI{products: []mangoapi.Product{chaunsaProduct()}}, testLogger())
	handler := cartRouter(registry, catalogSvc)

	doCartRequest(t, handler, http.MethodPost, "/cart/items", `{"productId":"m1"}`)

	rec := doCartRequest(t, handler, http.MethodPatch, "/cart/items/m1", `{"quantity":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var errEnvelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&errEnvelope); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errEnvelope.Error.Message != "Quantity cannot be less than 1" {
		t.Fatalf("unexpected message %q", errEnvelope.Error.Message)
	}

	rec = doCartRequest(t, handler, http.MethodPatch, "/cart/items/m1", `{"quantity":11}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	registry := cart.NewRegistry(cart.DefaultMaxQuantity, 0, nil)
	catalogSvc := catalog.NewService(stubCatalogAPI{products: []mangoapi.Product{chaunsaProduct()}}, testLogger())
	handler := cartRouter(registry, catalogSvc)

	doCartRequest(t, handler, http.MethodPost, "/cart/items", `{"productId":"m1"}`)

	rec := doCartRequest(t, handler, http.MethodDelete, "/cart/items/m1", "")
	envelope := decodeCart(t, rec)
	if envelope.Message != "Chaunsa removed from cart!" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
	if envelope.Data.TotalItems != 0 {
		t.Fatalf("expected empty cart, got %d items", envelope.Data.TotalItems)
	}

	doCartRequest(t, handler, http.MethodPost, "/cart/items", `{"productId":"m1"}`)
	rec = doCartRequest(t, handler, http.MethodDelete, "/cart", "")
	if envelope := decodeCart(t, rec); envelope.Data.TotalItems != 0 {
		t.Fatalf("expected cleared cart, got %d items", envelope.Data.TotalItems)
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	registry := cart.NewRegistry(cart.DefaultMaxQuantity, 0, nil)
	fee := decimal.NewFromInt(500)
	handler := CartFetch(registry, fee, testLogger())

	// fill session-1
	if _, err := registry.Get("session-1").Add(catalog.AsCartProduct(chaunsaProduct())); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req = req.WithContext(middleware.WithCartSessionID(req.Context(), "session-2"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope cartEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalItems != 0 {
		t.Fatalf("session-2 must not see session-1 items")
	}
}
