package llm

import (
	"fmt"
	"strings"
	"time"
)

const UnknownStore = "Unknown Store"

// Categories the extraction schema allows. Anything else becomes "other".
var allowedCategories = map[string]bool{
	"food":        true,
	"household":   true,
	"electronics": true,
	"clothing":    true,
	"other":       true,
}

// NormalizeReceipt coerces the untrusted JSON-decoded reply of the model
// into a well-typed ParsedReceipt. It never fails: any field of the wrong
// shape is replaced by its default. The second return value is the number
// of raw items discarded during filtering.
func NormalizeReceipt(raw any) (ParsedReceipt, int) {
	return normalizeReceiptAt(raw, time.Now())
}

func normalizeReceiptAt(raw any, now time.Time) (ParsedReceipt, int) {
	obj, _ := raw.(map[string]any)

	out := ParsedReceipt{
		StoreName:  UnknownStore,
		Date:       now.Format("2006-01-02"),
		Items:      []ReceiptItem{},
		Confidence: 0.5,
	}

	if s, ok := obj["storeName"].(string); ok {
		out.StoreName = s
	}

	if s, ok := obj["date"].(string); ok {
		if d, ok := parseDate(s); ok {
			out.Date = d
		}
	}

	dropped := 0
	if items, ok := obj["items"].([]any); ok {
		for _, it := range items {
			entry, ok := it.(map[string]any)
			if !ok {
				dropped++
				continue
			}
			name := ""
			if n, ok := entry["name"]; ok && n != nil {
				name = strings.TrimSpace(stringify(n))
			}
			price, hasPrice := entry["price"].(float64)
			if name == "" || !hasPrice || price <= 0 {
				dropped++
				continue
			}

			quantity := "1"
			if q, ok := entry["quantity"]; ok && q != nil {
				quantity = stringify(q)
			}

			category := "other"
			if c, ok := entry["category"].(string); ok && allowedCategories[c] {
				category = c
			}

			out.Items = append(out.Items, ReceiptItem{
				Name:     name,
				Quantity: quantity,
				Price:    price,
				Category: category,
			})
		}
	}

	if v, ok := obj["subtotal"].(float64); ok {
		out.Subtotal = &v
	}
	if v, ok := obj["tax"].(float64); ok {
		out.Tax = &v
	}
	if v, ok := obj["total"].(float64); ok {
		out.Total = v
	}
	if v, ok := obj["confidence"].(float64); ok {
		out.Confidence = clamp01(v)
	}

	// Cross-field corrections, in this order: the confidence cap looks at
	// the final item list and store name, not the raw input.
	if out.Total == 0 && len(out.Items) > 0 {
		sum := 0.0
		for _, it := range out.Items {
			sum += it.Price
		}
		out.Total = sum
	}

	if len(out.Items) == 0 || out.StoreName == UnknownStore {
		out.Confidence = min(out.Confidence, 0.3)
	}

	return out, dropped
}

// FallbackReceipt is returned whenever extraction cannot be completed.
func FallbackReceipt() ParsedReceipt {
	return ParsedReceipt{
		StoreName:  UnknownStore,
		Date:       time.Now().Format("2006-01-02"),
		Items:      []ReceiptItem{},
		Total:      0,
		Confidence: 0,
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

func parseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02"), true
		}
	}
	return "", false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; keep integers clean.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
