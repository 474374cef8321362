package cart

import (
	"errors"
	"time"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// ServiceInterface lets the order workflow read and clear carts without the
// concrete service.
type ServiceInterface interface {
	GetCart(userID int) ([]Line, error)
	Clear(userID int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) AddToCart(userID, productID, qty int) (Line, error) {
	if qty <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	return s.repo.AddToCart(userID, productID, qty, time.Now().UTC().Format(time.RFC3339))
}

func (s *Service) RemoveFromCart(userID, productID, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.RemoveFromCart(userID, productID, qty)
}

func (s *Service) GetCart(userID int) ([]Line, error) {
	return s.repo.GetCart(userID)
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}
