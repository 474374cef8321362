package wishlist

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	// ErrAlreadyInWishlist marks an idempotent add; handlers translate it
	// into a success response rather than a failure.
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
)

// Item is one saved product with its display fields snapshotted at add time.
type Item struct {
	UserID          int      `json:"userId"`
	ProductID       int      `json:"productId"`
	ProductName     string   `json:"productName"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	Category        string   `json:"category,omitempty"`
	AddedAt         string   `json:"addedAt,omitempty"`
}
