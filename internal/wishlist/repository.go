package wishlist

import (
	"sync"

	"github.com/selinkorkmz/your-coffee-backend/internal/product"
)

type Repository interface {
	Add(userID, productID int, addedAt string) (Item, error)
	// Remove deletes without an existence check; removing an absent item
	// is a no-op.
	Remove(userID, productID int) error
	List(userID int) ([]Item, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products map[int]product.Product
	items    []Item
}

func NewInMemoryRepository(products []product.Product) *InMemoryRepository {
	r := &InMemoryRepository{products: make(map[int]product.Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) Add(userID, productID int, addedAt string) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return Item{}, ErrProductNotFound
	}

	for _, it := range r.items {
		if it.UserID == userID && it.ProductID == productID {
			return it, ErrAlreadyInWishlist
		}
	}

	item := Item{
		UserID:          userID,
		ProductID:       productID,
		ProductName:     p.Name,
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		Category:        p.Category,
		AddedAt:         addedAt,
	}
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.UserID == userID && it.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) List(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Count reports how many rows a user has, for test assertions.
func (r *InMemoryRepository) Count(userID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, it := range r.items {
		if it.UserID == userID {
			n++
		}
	}
	return n
}
