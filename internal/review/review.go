package review

import "errors"

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyReview   = errors.New("a comment or a rating is required")
)

// Moderation values for the approved column. Rejected reviews stay stored
// but never surface publicly.
const (
	ModerationRejected = -1
	ModerationPending  = 0
	ModerationApproved = 1
)

// Review holds a comment, a rating, or both. ReviewerName is filled from the
// author row when listing.
type Review struct {
	ID           int      `json:"reviewId"`
	UserID       int      `json:"userId"`
	ProductID    int      `json:"productId"`
	Comment      *string  `json:"comment,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Approved     int      `json:"approved"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	ReviewerName string   `json:"reviewerName,omitempty"`
}
