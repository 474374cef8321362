package review

import "sync"

type Repository interface {
	Create(rev Review) (Review, error)
	// ListApproved returns approved reviews for a product with the
	// author's display name attached.
	ListApproved(productID int) ([]Review, error)
	// Moderate writes the caller-supplied approved value as-is.
	Moderate(reviewID int, approved int) error
	GetByID(reviewID int) (Review, error)
}

// InMemoryRepository is used for tests and local scenarios. Reviewer names
// come from the seeded name map.
type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
	names   map[int]string
	nextID  int
}

func NewInMemoryRepository(names map[int]string) *InMemoryRepository {
	if names == nil {
		names = map[int]string{}
	}
	return &InMemoryRepository{names: names, nextID: 1}
}

func (r *InMemoryRepository) Create(rev Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rev.ID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, rev)
	return rev, nil
}

func (r *InMemoryRepository) ListApproved(productID int) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, 0)
	for _, rev := range r.reviews {
		if rev.ProductID == productID && rev.Approved == ModerationApproved {
			rev.ReviewerName = r.names[rev.UserID]
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Moderate(reviewID int, approved int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == reviewID {
			r.reviews[i].Approved = approved
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) GetByID(reviewID int) (Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rev := range r.reviews {
		if rev.ID == reviewID {
			return rev, nil
		}
	}
	return Review{}, ErrNotFound
}
