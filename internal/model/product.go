package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a sellable item in the catalogue.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	SKU         string    `json:"sku" db:"sku"`
	Price       float64   `json:"price" db:"price"`
	Cost        float64   `json:"cost" db:"cost"`
	Description string    `json:"description,omitempty" db:"description"`
	Image       string    `json:"image,omitempty" db:"image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}
