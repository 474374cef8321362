package invoice

import "sync"

type Repository interface {
	Create(inv Invoice) (Invoice, error)
	ListByDateRange(start, end string) ([]Invoice, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	invoices []Invoice
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(inv Invoice) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv.ID = r.nextID
	r.nextID++
	r.invoices = append(r.invoices, inv)
	return inv, nil
}

func (r *InMemoryRepository) ListByDateRange(start, end string) ([]Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Invoice, 0)
	for _, inv := range r.invoices {
		if inv.Date >= start && inv.Date <= end {
			out = append(out, inv)
		}
	}
	return out, nil
}
