package mangoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tahir-sigmadevelopers/multanimango/pkg/config"
	pkgerrors "github.com/tahir-sigmadevelopers/multanimango/pkg/errors"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/metrics"
)

const genericFailure = "Something went wrong. Please try again."

// Client is the typed HTTP client for the remote store backend. Every call
// carries the caller's context, so an abandoned request is cancelled with it.
type Client struct {
	baseURL string
	httpc   *http.Client
	logg    *logger.Logger
	metrics *metrics.UpstreamMetrics
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewClient validates the upstream configuration and builds the client.
func NewClient(cfg config.UpstreamConfig, logg *logger.Logger, m *metrics.UpstreamMetrics) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("upstream base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: base,
		httpc:   &http.Client{Timeout: timeout},
		logg:    logg,
		metrics: m,
	}, nil
}

// Ping verifies the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Stats ProductStats `json:"stats"`
	}
	return c.do(ctx, "ping", http.MethodGet, "/api/mango/stats", nil, &out)
}

// ListProducts returns the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out struct {
		AllData []Product `json:"allData"`
	}
	if err := c.do(ctx, "list_products", http.MethodGet, "/api/mango/get", nil, &out); err != nil {
		return nil, err
	}
	return out.AllData, nil
}

// GetProduct returns a single catalog entry.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out struct {
		SingleMango *Product `json:"singleMango"`
	}
	if err := c.do(ctx, "get_product", http.MethodGet, "/api/single/"+id, nil, &out); err != nil {
		return nil, err
	}
	if out.SingleMango == nil || out.SingleMango.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return out.SingleMango, nil
}

// SaveProduct creates a catalog entry.
func (c *Client) SaveProduct(ctx context.Context, input ProductInput) (string, error) {
	var out statusEnvelope
	if err := c.do(ctx, "save_product", http.MethodPost, "/api/mango/save", input, &out); err != nil {
		return "", err
	}
	if err := out.failure(); err != nil {
		return "", err
	}
	return out.Message, nil
}

// DeleteProduct removes a catalog entry.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	var out statusEnvelope
	if err := c.do(ctx, "delete_product", http.MethodDelete, "/api/delete/"+id, nil, &out); err != nil {
		return err
	}
	return out.failure()
}

// CreateOrder submits an order and returns the backend's message.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (string, error) {
	var out statusEnvelope
	if err := c.do(ctx, "create_order", http.MethodPost, "/api/orders/create", req, &out); err != nil {
		return "", err
	}
	if err := out.failure(); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListOrders returns every stored order. Sort order is owned by the backend.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out struct {
		statusEnvelope
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, "list_orders", http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	if err := out.failure(); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// UpdateOrderStatus patches the order and/or payment status of one order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, update StatusUpdate) error {
	var out statusEnvelope
	if err := c.do(ctx, "update_order_status", http.MethodPut, "/api/orders/"+id+"/status", update, &out); err != nil {
		return err
	}
	return out.failure()
}

// DeleteOrder removes an order record.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	var out statusEnvelope
	if err := c.do(ctx, "delete_order", http.MethodDelete, "/api/orders/"+id, nil, &out); err != nil {
		return err
	}
	return out.failure()
}

// SaveContact stores a contact-form message.
func (c *Client) SaveContact(ctx context.Context, req ContactRequest) (string, error) {
	var out statusEnvelope
	if err := c.do(ctx, "save_contact", http.MethodPost, "/api/save/contact", req, &out); err != nil {
		return "", err
	}
	if err := out.failure(); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListContacts returns every stored contact message.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	var out struct {
		statusEnvelope
		Contacts []Contact `json:"contacts"`
	}
	if err := c.do(ctx, "list_contacts", http.MethodGet, "/api/contacts", nil, &out); err != nil {
		return nil, err
	}
	if err := out.failure(); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// DeleteContact removes a contact message.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	var out statusEnvelope
	if err := c.do(ctx, "delete_contact", http.MethodDelete, "/api/contacts/"+id, nil, &out); err != nil {
		return err
	}
	return out.failure()
}

// Login verifies admin credentials against the backend.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var out struct {
		StatusCode int    `json:"statusCode"`
		User       *User  `json:"user"`
		Message    string `json:"message"`
	}
	if err := c.do(ctx, "login", http.MethodPost, "/api/login/user", payload, &out); err != nil {
		return nil, err
	}
	if out.StatusCode != http.StatusOK || out.User == nil {
		msg := out.Message
		if msg == "" {
			msg = "Login failed"
		}
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, msg)
	}
	return &LoginResult{User: *out.User, Message: out.Message}, nil
}

// GetProductStats fetches catalog counters for the dashboard.
func (c *Client) GetProductStats(ctx context.Context) (*ProductStats, error) {
	var out struct {
		Stats ProductStats `json:"stats"`
	}
	if err := c.do(ctx, "product_stats", http.MethodGet, "/api/mango/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// GetContactStats fetches contact counters for the dashboard.
func (c *Client) GetContactStats(ctx context.Context) (*ContactStats, error) {
	var out struct {
		Stats ContactStats `json:"stats"`
	}
	if err := c.do(ctx, "contact_stats", http.MethodGet, "/api/contacts/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// GetOrderStats fetches order counters for the dashboard.
func (c *Client) GetOrderStats(ctx context.Context) (*OrderStats, error) {
	var out struct {
		Stats OrderStats `json:"stats"`
	}
	if err := c.do(ctx, "order_stats", http.MethodGet, "/api/orders/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// statusEnvelope is the {success, message} shape most mutation endpoints use.
type statusEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s statusEnvelope) failure() error {
	if s.Success {
		return nil
	}
	msg := s.Message
	if msg == "" {
		msg = genericFailure
	}
	return pkgerrors.New(pkgerrors.CodeUpstream, msg)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.observe(op, "transport_error", start)
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, genericFailure)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(op, "read_error", start)
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, genericFailure)
	}

	c.observe(op, fmt.Sprintf("%d", resp.StatusCode), start)

	if resp.StatusCode >= http.StatusBadRequest {
		var failed statusEnvelope
		msg := genericFailure
		if decodeErr := json.Unmarshal(raw, &failed); decodeErr == nil && failed.Message != "" {
			msg = failed.Message
		}
		return pkgerrors.New(pkgerrors.CodeUpstream, msg).
			WithDetails(map[string]any{"status": resp.StatusCode, "op": op})
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "unexpected response from store backend")
	}
	return nil
}

func (c *Client) observe(op, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Observe(op, outcome, time.Since(start))
}
