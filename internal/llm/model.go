package llm

// ParsedReceipt is the sanitized extraction result returned to the caller.
// Subtotal and Tax stay nil when the model did not report a usable number.
type ParsedReceipt struct {
	StoreName  string        `json:"storeName"`
	Date       string        `json:"date"` // YYYY-MM-DD
	Items      []ReceiptItem `json:"items"`
	Subtotal   *float64      `json:"subtotal"`
	Tax        *float64      `json:"tax"`
	Total      float64       `json:"total"`
	Confidence float64       `json:"confidence"`
}

type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category"` // food | household | electronics | clothing | other
}
