package mangoapi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog listing as the store backend returns it.
type Product struct {
	ID            string           `json:"_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Variation     string           `json:"variation,omitempty"`
	Image         ProductImage     `json:"image"`
}

// ProductImage carries the hosted image reference for a product.
type ProductImage struct {
	URL string `json:"url"`
}

// ProductInput is the payload accepted by the product save endpoint.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       string `json:"price"`
}

// OrderItem is one purchased line inside an order.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

// OrderRequest is the payload for order creation.
type OrderRequest struct {
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	ShippingAddress string          `json:"shippingAddress"`
	City            string          `json:"city"`
	PostalCode      string          `json:"postalCode"`
	PaymentMethod   string          `json:"paymentMethod"`
	OrderItems      []OrderItem     `json:"orderItems"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// Order is a persisted order record.
type Order struct {
	ID              string          `json:"_id"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	ShippingAddress string          `json:"shippingAddress"`
	City            string          `json:"city"`
	PostalCode      string          `json:"postalCode"`
	PaymentMethod   string          `json:"paymentMethod"`
	OrderItems      []OrderItem     `json:"orderItems"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	OrderStatus     string          `json:"orderStatus"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// StatusUpdate patches either or both status fields on an order.
type StatusUpdate struct {
	OrderStatus   *string `json:"orderStatus,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// ContactRequest is a storefront contact-form submission.
type ContactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	WhatsappNo string `json:"whatsappNo"`
	Message    string `json:"message"`
}

// Contact is a stored contact message.
type Contact struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	WhatsappNo string    `json:"whatsappNo"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// User is the identity record the login endpoint returns.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResult bundles the user plus the backend's login message.
type LoginResult struct {
	User    User
	Message string
}

// ProductStats summarises the catalog for the admin dashboard.
type ProductStats struct {
	TotalMangoes int `json:"totalMangoes"`
	TodayMangoes int `json:"todayMangoes"`
}

// ContactStats summarises contact messages for the admin dashboard.
type ContactStats struct {
	TotalContacts int `json:"totalContacts"`
	TodayContacts int `json:"todayContacts"`
}

// OrderStats summarises orders for the admin dashboard.
type OrderStats struct {
	TotalOrders   int             `json:"totalOrders"`
	TodayOrders   int             `json:"todayOrders"`
	PendingOrders int             `json:"pendingOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}
