package models

import (
	"strings"
	"time"
)

// Payment methods accepted at the counter
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentBankTransfer = "bank-transfer"
	PaymentInstallment  = "installment"
)

// PaymentMethods lists every accepted method, in display order.
var PaymentMethods = []string{PaymentCash, PaymentCard, PaymentBankTransfer, PaymentInstallment}

// Sale is an immutable record of a completed transaction. ProductID is a
// weak reference: the product may sell out later, the sale stands on its own.
// Profit is computed once at sale time and never recomputed.
type Sale struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"`
	IMEI          string    `json:"imei,omitempty"`
	SalePrice     float64   `json:"salePrice"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	Profit        float64   `json:"profit"`
	Date          time.Time `json:"date"`
	InvoiceNumber string    `json:"invoiceNumber"`
}

// RecordSaleRequest is the validated input for the record-sale operation.
type RecordSaleRequest struct {
	ProductID     string  `json:"productId"`
	SalePrice     float64 `json:"salePrice"`
	CustomerName  string  `json:"customerName,omitempty"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
}

func (r *RecordSaleRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return &ValidationError{Field: "productId", Reason: "product id is required"}
	}
	if r.SalePrice < 0 {
		return &ValidationError{Field: "salePrice", Reason: "sale price cannot be negative"}
	}
	switch r.PaymentMethod {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentInstallment:
	default:
		return &ValidationError{Field: "paymentMethod", Reason: "unknown payment method"}
	}
	return nil
}
