package scan

import (
	"time"

	"github.com/google/uuid"
)

// ScannedItem mirrors one row of the scanned_items table.
type ScannedItem struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id"`
	StoreName  string     `json:"store_name"`
	ScanDate   string     `json:"scan_date"` // YYYY-MM-DD
	Subtotal   *float64   `json:"subtotal"`
	Tax        *float64   `json:"tax"`
	Total      float64    `json:"total"`
	CO2Total   float64    `json:"co2_total"`
	Confidence float64    `json:"confidence"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ScannedItemInsert is the insert shape: identity and timestamps are
// generated, everything else is optional.
type ScannedItemInsert struct {
	UserID     *uuid.UUID `json:"user_id"`
	StoreName  *string    `json:"store_name"`
	ScanDate   *string    `json:"scan_date"`
	Subtotal   *float64   `json:"subtotal"`
	Tax        *float64   `json:"tax"`
	Total      *float64   `json:"total"`
	CO2Total   *float64   `json:"co2_total"`
	Confidence *float64   `json:"confidence"`
}

// ScannedItemUpdate is the update shape: all fields optional.
type ScannedItemUpdate struct {
	StoreName  *string  `json:"store_name"`
	ScanDate   *string  `json:"scan_date"`
	Subtotal   *float64 `json:"subtotal"`
	Tax        *float64 `json:"tax"`
	Total      *float64 `json:"total"`
	CO2Total   *float64 `json:"co2_total"`
	Confidence *float64 `json:"confidence"`
}

// ReceiptItem mirrors one row of the receipt_items table.
type ReceiptItem struct {
	ID            uuid.UUID `json:"id"`
	ScannedItemID uuid.UUID `json:"scanned_item_id"`
	Name          string    `json:"name"`
	Quantity      string    `json:"quantity"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	CO2Estimate   float64   `json:"co2_estimate"`
}

type ReceiptItemInsert struct {
	ScannedItemID uuid.UUID `json:"scanned_item_id"`
	Name          *string   `json:"name"`
	Quantity      *string   `json:"quantity"`
	Price         *float64  `json:"price"`
	Category      *string   `json:"category"`
	CO2Estimate   *float64  `json:"co2_estimate"`
}

// Receipt bundles a scan with its line items for read endpoints.
type Receipt struct {
	ScannedItem
	Items []ReceiptItem `json:"items"`
}
