package invoice

import "time"

// profitMargin is the flat share of revenue reported as profit.
const profitMargin = 0.25

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record persists an invoice for a completed payment. Satisfies the order
// package's InvoiceRecorder.
func (s *Service) Record(orderID, userID int, total float64, date string) error {
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.repo.Create(Invoice{OrderID: orderID, UserID: userID, TotalPrice: total, Date: date})
	return err
}

// Report sums invoice totals in [start, end]. Dates are RFC3339 or
// YYYY-MM-DD strings; a missing or reversed range is rejected.
func (s *Service) Report(start, end string) (Report, error) {
	if start == "" || end == "" || start > end {
		return Report{}, ErrInvalidRange
	}

	invoices, err := s.repo.ListByDateRange(start, end)
	if err != nil {
		return Report{}, err
	}

	report := Report{Invoices: invoices}
	for _, inv := range invoices {
		report.Revenue += inv.TotalPrice
	}
	report.Profit = report.Revenue * profitMargin
	return report, nil
}
