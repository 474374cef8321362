package invoice

import "errors"

var ErrInvalidRange = errors.New("invalid date range")

// Invoice records a completed payment for revenue reporting.
type Invoice struct {
	ID         int     `json:"invoiceId"`
	OrderID    int     `json:"orderId"`
	UserID     int     `json:"userId"`
	TotalPrice float64 `json:"totalPrice"`
	Date       string  `json:"date"`
}

// Report is the revenue summary over a date range. Profit is a flat 25% of
// revenue; there is no per-item cost basis in this system.
type Report struct {
	Invoices []Invoice `json:"invoices"`
	Revenue  float64   `json:"revenue"`
	Profit   float64   `json:"profit"`
}
