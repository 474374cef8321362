package cart

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrItemNotFound      = errors.New("item not in cart")
	ErrExcessRemoval     = errors.New("cannot remove more than the quantity in cart")
)

// Line is one cart row. The product display fields are a snapshot captured
// at add time; later catalog edits do not touch existing lines.
type Line struct {
	UserID          int      `json:"userId"`
	ProductID       int      `json:"productId"`
	Quantity        int      `json:"quantity"`
	ProductName     string   `json:"productName"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	Category        string   `json:"category,omitempty"`
	AddedAt         string   `json:"addedAt,omitempty"`
}

// EffectivePrice is the discounted snapshot price when present.
func (l Line) EffectivePrice() float64 {
	if l.DiscountedPrice != nil {
		return *l.DiscountedPrice
	}
	return l.Price
}
