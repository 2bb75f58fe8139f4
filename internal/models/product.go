package models

import (
	"strings"
	"time"
)

// Product categories
const (
	CategoryMobile    = "mobile"
	CategoryAccessory = "accessory"
	CategoryOther     = "other"
)

// Product status values. A product leaves 'in-stock' only by selling out;
// there is no transition out of 'sold'.
const (
	StatusInStock = "in-stock"
	StatusSold    = "sold"
)

// Product is a unit or batch of stock. Field names follow the persisted
// ledger format, so optional fields marshal away entirely when unset.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Category      string    `json:"category"`
	IMEI          string    `json:"imei,omitempty"`
	Color         string    `json:"color,omitempty"`
	Storage       string    `json:"storage,omitempty"`
	MfgDate       string    `json:"mfgDate,omitempty"`
	PurchasePrice float64   `json:"purchasePrice"`
	SalePrice     float64   `json:"salePrice"`
	Quantity      int       `json:"quantity"`
	Supplier      string    `json:"supplier,omitempty"`
	DateAdded     time.Time `json:"dateAdded"`
	Status        string    `json:"status"`
}

// InStock reports whether the product is currently sellable.
func (p *Product) InStock() bool {
	return p.Status == StatusInStock && p.Quantity > 0
}

// ProductPatch carries the fields an update may touch. Nil fields are left
// unchanged by the merge.
type ProductPatch struct {
	Quantity  *int
	Status    *string
	SalePrice *float64
	Supplier  *string
}

// AddProductRequest is the validated input for the add-product operation.
type AddProductRequest struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	IMEI          string  `json:"imei,omitempty"`
	Color         string  `json:"color,omitempty"`
	Storage       string  `json:"storage,omitempty"`
	MfgDate       string  `json:"mfgDate,omitempty"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalePrice     float64 `json:"salePrice"`
	Quantity      int     `json:"quantity"`
	Supplier      string  `json:"supplier,omitempty"`
}

// Validate checks the request before any domain object is constructed.
func (r *AddProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "product name is required"}
	}
	if strings.TrimSpace(r.Brand) == "" {
		return &ValidationError{Field: "brand", Reason: "brand is required"}
	}
	switch r.Category {
	case CategoryMobile, CategoryAccessory, CategoryOther:
	default:
		return &ValidationError{Field: "category", Reason: "category must be mobile, accessory or other"}
	}
	if r.PurchasePrice < 0 {
		return &ValidationError{Field: "purchasePrice", Reason: "purchase price cannot be negative"}
	}
	if r.SalePrice < 0 {
		return &ValidationError{Field: "salePrice", Reason: "sale price cannot be negative"}
	}
	if r.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "quantity must be at least 1"}
	}
	return nil
}
