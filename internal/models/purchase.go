package models

import "time"

// Purchase is an append-only ledger record of stock acquisition. Purchases
// are not linked back to products by id; they correlate by name/brand at
// display time only.
type Purchase struct {
	ID                string    `json:"id"`
	ProductName       string    `json:"productName"`
	Brand             string    `json:"brand"`
	Category          string    `json:"category"`
	IMEI              string    `json:"imei,omitempty"`
	Color             string    `json:"color,omitempty"`
	Storage           string    `json:"storage,omitempty"`
	Quantity          int       `json:"quantity"`
	PurchasePrice     float64   `json:"purchasePrice"`
	ExpectedSalePrice float64   `json:"expectedSalePrice"`
	Supplier          string    `json:"supplier"`
	Date              time.Time `json:"date"`
	BillNumber        string    `json:"billNumber"`
}
