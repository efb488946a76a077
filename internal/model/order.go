package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered:
		return true
	}
	return false
}

// Supported customer-facing languages.
const (
	LanguageEnglish = "en"
	LanguageBurmese = "my"
)

// ValidLanguage reports whether lang is a supported language code.
func ValidLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageBurmese
}

// CartItem is a single line of an order's cart. Unit prices are not
// stored per line; the order's total price snapshots catalogue prices at
// submission time.
type CartItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Order represents one customer purchase attempt.
type Order struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	Name                string      `json:"name" db:"name"`
	Email               string      `json:"email" db:"email"`
	Address             string      `json:"address" db:"address"`
	Cart                []CartItem  `json:"cart" db:"cart"`
	TotalPrice          float64     `json:"totalPrice" db:"total_price"`
	PurchaseOrderNumber string      `json:"purchaseOrderNumber" db:"purchase_order_number"`
	Confirmed           bool        `json:"confirmed" db:"confirmed"`
	Status              OrderStatus `json:"status" db:"status"`
	Language            string      `json:"language" db:"language"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderRequest is the payload for submitting a new order.
type OrderRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Address  string     `json:"address"`
	Cart     []CartItem `json:"cart"`
	Language string     `json:"language,omitempty"`
}

// OrderSubmitResponse acknowledges a submitted order awaiting OTP
// confirmation.
type OrderSubmitResponse struct {
	OrderID uuid.UUID `json:"orderId"`
	Message string    `json:"message"`
}

// ConfirmOrderRequest carries the OTP proof for finalising an order.
type ConfirmOrderRequest struct {
	OrderID uuid.UUID `json:"orderId"`
	Email   string    `json:"email"`
	Code    string    `json:"code"`
}

// ResendOtpRequest asks for a fresh OTP for a pending order.
type ResendOtpRequest struct {
	OrderID uuid.UUID `json:"orderId"`
	Email   string    `json:"email"`
}

// UpdateOrderStatusRequest is the admin payload for overwriting an
// order's status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// UpdateOrderStatusResponse returns the updated order record.
type UpdateOrderStatusResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}
