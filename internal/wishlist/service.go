package wishlist

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(userID, productID int) (Item, error) {
	return s.repo.Add(userID, productID, time.Now().UTC().Format(time.RFC3339))
}

func (s *Service) Remove(userID, productID int) error {
	return s.repo.Remove(userID, productID)
}

func (s *Service) List(userID int) ([]Item, error) {
	return s.repo.List(userID)
}
