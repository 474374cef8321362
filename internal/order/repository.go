package order

import (
	"sync"

	"github.com/selinkorkmz/your-coffee-backend/internal/product"
)

// Repository defines persistence for orders. Create, Cancel and Return are
// atomic: either every row involved moves or none does.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	// ConfirmPayment completes the pending payment of the order matching
	// (orderID, userID, payment Pending). No match yields ErrOrderNotFound.
	ConfirmPayment(orderID, userID int, transactionDate string) (Order, error)
	// PaymentStatus returns PaymentStatusNotFound (not an error) for an
	// unknown order id.
	PaymentStatus(orderID int) (string, error)
	UpdateStatus(orderID int, status Status) error
	// Cancel sets the status to Canceled and restores every item's stock.
	Cancel(orderID int) (Order, error)
	// Return sets the status to Returned and restores every item's stock.
	Return(orderID int) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios. It keeps its own
// product stock so cancellation and return flows can be exercised without a
// database.
type InMemoryRepository struct {
	mu     sync.Mutex
	orders []Order
	stock  map[int]int
	nextID int
}

func NewInMemoryRepository(products []product.Product) *InMemoryRepository {
	r := &InMemoryRepository{stock: make(map[int]int, len(products)), nextID: 1}
	for _, p := range products {
		r.stock[p.ID] = p.QuantityInStock
	}
	return r
}

// StockOf reports the current stock for a product, for test assertions.
func (r *InMemoryRepository) StockOf(productID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stock[productID]
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = r.nextID
	r.nextID++
	for i := range ord.Items {
		ord.Items[i].ID = i + 1
		ord.Items[i].OrderID = ord.ID
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(id)
}

func (r *InMemoryRepository) findLocked(id int) (Order, error) {
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ConfirmPayment(orderID, userID int, transactionDate string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		ord := &r.orders[i]
		if ord.ID == orderID && ord.UserID == userID && ord.PaymentStatus == PaymentPending {
			ord.PaymentStatus = PaymentCompleted
			ord.Status = StatusProcessing
			ord.TransactionDate = transactionDate
			return *ord, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

func (r *InMemoryRepository) PaymentStatus(orderID int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ord := range r.orders {
		if ord.ID == orderID {
			return string(ord.PaymentStatus), nil
		}
	}
	return PaymentStatusNotFound, nil
}

func (r *InMemoryRepository) UpdateStatus(orderID int, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryRepository) Cancel(orderID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		ord := &r.orders[i]
		if ord.ID != orderID {
			continue
		}
		if !CanCancel(ord.Status) {
			return Order{}, ErrCannotCancel
		}
		ord.Status = StatusCanceled
		for _, item := range ord.Items {
			r.stock[item.ProductID] += item.Quantity
		}
		return *ord, nil
	}
	return Order{}, ErrOrderNotFound
}

func (r *InMemoryRepository) Return(orderID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		ord := &r.orders[i]
		if ord.ID != orderID {
			continue
		}
		if !CanReturn(ord.Status) {
			return Order{}, ErrNotReturnable
		}
		ord.Status = StatusReturned
		for _, item := range ord.Items {
			r.stock[item.ProductID] += item.Quantity
		}
		return *ord, nil
	}
	return Order{}, ErrOrderNotFound
}
