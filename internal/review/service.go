package review

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit stores a comment and/or rating. A submission carrying a comment
// waits for moderation; a bare rating is approved immediately. The policy is
// asymmetric on purpose: it is what the storefront has always done.
func (s *Service) Submit(userID, productID int, comment *string, rating *float64) (Review, error) {
	if comment == nil && rating == nil {
		return Review{}, ErrEmptyReview
	}
	if rating != nil && (*rating < 1.0 || *rating > 5.0) {
		return Review{}, ErrInvalidRating
	}

	approved := ModerationApproved
	if comment != nil {
		approved = ModerationPending
	}

	return s.repo.Create(Review{
		UserID:    userID,
		ProductID: productID,
		Comment:   comment,
		Rating:    rating,
		Approved:  approved,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) ListApproved(productID int) ([]Review, error) {
	return s.repo.ListApproved(productID)
}

// Moderate writes the caller-supplied value without constraining it to the
// -1/0/1 tri-state; moderation clients have historically sent other values.
func (s *Service) Moderate(reviewID int, approved int) error {
	return s.repo.Moderate(reviewID, approved)
}
