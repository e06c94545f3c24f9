package domain

import "time"

// DailySummary is a persisted snapshot of the aggregate sales statistics,
// written once per day by the summary scheduler.
type DailySummary struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	TotalSales   float64   `json:"total_sales"`
	TotalEntries int       `json:"total_entries"`
	AvgSale      float64   `json:"avg_sale"`
	UpdatedAt    time.Time `json:"updated_at"`
}
