package domain

import "time"

// Attribute keys of the legacy default fields. TotalAmount is derived from
// them when both are present; arbitrary fields carry no derived values.
const (
	AttrQuantity = "quantity"
	AttrPrice    = "price"
)

// SalesEntry is one logged transaction. Attributes is an open map keyed by
// field name; it is not validated against the current field configs beyond
// the checks applied at entry time, so renamed or deleted fields may leave
// historical keys behind.
type SalesEntry struct {
	ID            string         `json:"id"`
	Date          time.Time      `json:"date"`
	EnteredBy     int            `json:"entered_by"`
	EnteredByName string         `json:"entered_by_name,omitempty"`
	Attributes    map[string]any `json:"attributes"`
	TotalAmount   *float64       `json:"total_amount,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ComputeTotalAmount fills TotalAmount from quantity*price when both keys
// hold numeric values. Otherwise TotalAmount stays nil.
func (e *SalesEntry) ComputeTotalAmount() {
	qty, okQty := numericAttribute(e.Attributes[AttrQuantity])
	price, okPrice := numericAttribute(e.Attributes[AttrPrice])
	if !okQty || !okPrice {
		e.TotalAmount = nil
		return
	}

	total := qty * price
	e.TotalAmount = &total
}

func numericAttribute(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

type CreateEntryRequest struct {
	Date       *time.Time     `json:"date"`
	Attributes map[string]any `json:"attributes"`
}

type UpdateEntryRequest struct {
	ID         string         `json:"id"`
	Date       *time.Time     `json:"date"`
	Attributes map[string]any `json:"attributes"`
}

// EntryFilter bounds the listing by entry date. Both bounds are inclusive.
type EntryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SalesStats aggregates quantity*price over every entry in the store.
type SalesStats struct {
	TotalSales   float64 `json:"total_sales"`
	TotalEntries int     `json:"total_entries"`
	AvgSale      float64 `json:"avg_sale"`
}
