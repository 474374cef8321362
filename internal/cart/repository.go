package cart

import (
	"sync"

	"github.com/selinkorkmz/your-coffee-backend/internal/product"
)

// Repository provides access to cart lines. Adding a line also decrements
// product stock; implementations must make the stock check and the writes a
// single atomic step. Removing a line never restores stock, matching the
// storefront's long-standing behavior.
type Repository interface {
	AddToCart(userID, productID, qty int, addedAt string) (Line, error)
	RemoveFromCart(userID, productID, qty int) error
	GetCart(userID int) ([]Line, error)
	Clear(userID int) error
}

// InMemoryRepository is used for tests and local scenarios. It keeps its own
// product stock so cart operations can be exercised without a database.
type InMemoryRepository struct {
	mu       sync.Mutex
	products map[int]product.Product
	lines    []Line
}

func NewInMemoryRepository(products []product.Product) *InMemoryRepository {
	r := &InMemoryRepository{products: make(map[int]product.Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

// StockOf reports the remaining stock for a product, for test assertions.
func (r *InMemoryRepository) StockOf(productID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[productID].QuantityInStock
}

func (r *InMemoryRepository) AddToCart(userID, productID, qty int, addedAt string) (Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return Line{}, ErrProductNotFound
	}
	if p.QuantityInStock < qty {
		return Line{}, ErrInsufficientStock
	}

	p.QuantityInStock -= qty
	r.products[productID] = p

	for i := range r.lines {
		if r.lines[i].UserID == userID && r.lines[i].ProductID == productID {
			r.lines[i].Quantity += qty
			return r.lines[i], nil
		}
	}

	line := Line{
		UserID:          userID,
		ProductID:       productID,
		Quantity:        qty,
		ProductName:     p.Name,
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		Category:        p.Category,
		AddedAt:         addedAt,
	}
	r.lines = append(r.lines, line)
	return line, nil
}

func (r *InMemoryRepository) RemoveFromCart(userID, productID, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].UserID == userID && r.lines[i].ProductID == productID {
			if qty > r.lines[i].Quantity {
				return ErrExcessRemoval
			}
			if qty == r.lines[i].Quantity {
				r.lines = append(r.lines[:i], r.lines[i+1:]...)
				return nil
			}
			r.lines[i].Quantity -= qty
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) GetCart(userID int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Line, 0)
	for _, l := range r.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.lines[:0]
	for _, l := range r.lines {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	r.lines = kept
	return nil
}
