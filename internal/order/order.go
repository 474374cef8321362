package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrCannotCancel  = errors.New("order cannot be canceled")
	ErrNotReturnable = errors.New("order is not returnable")
	ErrInvalidStatus = errors.New("invalid order status")
)

// Order is one checkout with its line items. TransactionID is assigned when
// payment is initiated; TransactionDate when it completes.
type Order struct {
	ID              int           `json:"orderId"`
	UserID          int           `json:"userId"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          Status        `json:"orderStatus"`
	OrderDate       string        `json:"orderDate"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethod   string        `json:"paymentMethod,omitempty"`
	TransactionID   string        `json:"transactionId,omitempty"`
	TransactionDate string        `json:"transactionDate,omitempty"`
	Items           []Item        `json:"items,omitempty"`
}

// Item is one product line within an order, priced at the moment of
// purchase.
type Item struct {
	ID              int     `json:"orderItemId"`
	OrderID         int     `json:"orderId"`
	ProductID       int     `json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	LineTotal       float64 `json:"lineTotal"`
}
