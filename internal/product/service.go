package product

import "errors"

var (
	ErrInvalidPrice    = errors.New("price must be non-negative")
	ErrInvalidQuantity = errors.New("quantity must be non-negative")
)

// ServiceInterface lets order/cart handlers depend on catalog lookups
// without the concrete service.
type ServiceInterface interface {
	List() []Product
	ListByIDs(ids []int) ([]Product, error)
	Search(query string) []Product
	GetByID(id int) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Search(query string) []Product {
	return s.repo.Search(query)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	if p.Price < 0 {
		return Product{}, ErrInvalidPrice
	}
	if p.QuantityInStock < 0 {
		return Product{}, ErrInvalidQuantity
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	if p.Price < 0 {
		return Product{}, ErrInvalidPrice
	}
	if p.QuantityInStock < 0 {
		return Product{}, ErrInvalidQuantity
	}
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// SetPricing updates price and discount together; passing a nil discount
// clears any active discount.
func (s *Service) SetPricing(id int, price float64, discounted *float64, updatedAt string) (Product, error) {
	if price < 0 || (discounted != nil && *discounted < 0) {
		return Product{}, ErrInvalidPrice
	}
	return s.repo.SetPricing(id, price, discounted, updatedAt)
}

func (s *Service) SetStock(id int, quantity int, updatedAt string) (Product, error) {
	if quantity < 0 {
		return Product{}, ErrInvalidQuantity
	}
	return s.repo.SetStock(id, quantity, updatedAt)
}
