package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/selinkorkmz/your-coffee-backend/internal/cart"
)

// InvoiceRecorder persists an invoice row when a payment completes.
type InvoiceRecorder interface {
	Record(orderID, userID int, total float64, date string) error
}

// RefundFunc is invoked once when a returned order had a completed payment.
// There is no payment-gateway integration; the default hook only logs.
type RefundFunc func(ord Order)

type Service struct {
	repo     Repository
	carts    cart.ServiceInterface
	invoices InvoiceRecorder
	refund   RefundFunc
}

func NewService(repo Repository, carts cart.ServiceInterface, invoices InvoiceRecorder, refund RefundFunc) *Service {
	if refund == nil {
		refund = func(ord Order) {
			fmt.Printf("refund issued for order %d, amount %.2f\n", ord.ID, ord.TotalPrice)
		}
	}
	return &Service{repo: repo, carts: carts, invoices: invoices, refund: refund}
}

// Checkout turns the user's cart into one pending order. Cart lines keep
// their add-time snapshot prices; stock was already taken when the lines
// were added, so checkout itself does not touch it. The cart survives until
// the payment is confirmed.
func (s *Service) Checkout(userID int, paymentMethod, deliveryAddress string) (Order, error) {
	lines, err := s.carts.GetCart(userID)
	if err != nil {
		return Order{}, err
	}
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ord := Order{
		UserID:          userID,
		Status:          StatusProcessing,
		OrderDate:       now,
		DeliveryAddress: deliveryAddress,
		PaymentStatus:   PaymentPending,
		PaymentMethod:   paymentMethod,
		TransactionID:   uuid.NewString(),
	}
	for _, line := range lines {
		price := line.EffectivePrice()
		item := Item{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			Quantity:        line.Quantity,
			PriceAtPurchase: price,
			LineTotal:       price * float64(line.Quantity),
		}
		ord.TotalPrice += item.LineTotal
		ord.Items = append(ord.Items, item)
	}

	return s.repo.Create(ord)
}

// ConfirmPayment completes the pending payment, records the invoice, then
// clears the user's entire cart. The full clear (rather than only the paid
// lines) is the behavior the storefront has always had; see DESIGN.md.
func (s *Service) ConfirmPayment(orderID, userID int) (Order, error) {
	ord, err := s.repo.ConfirmPayment(orderID, userID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return Order{}, err
	}

	if err := s.invoices.Record(ord.ID, ord.UserID, ord.TotalPrice, ord.TransactionDate); err != nil {
		fmt.Printf("warning: could not record invoice for order %d: %v\n", ord.ID, err)
	}

	if err := s.carts.Clear(userID); err != nil {
		fmt.Printf("warning: could not clear cart for user %d: %v\n", userID, err)
	}

	return ord, nil
}

func (s *Service) PaymentStatus(orderID int) (string, error) {
	return s.repo.PaymentStatus(orderID)
}

func (s *Service) UpdateStatus(orderID int, status Status) error {
	if !IsUpdatable(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(orderID, status)
}

func (s *Service) Cancel(orderID int) (Order, error) {
	return s.repo.Cancel(orderID)
}

// Return flips the order to Returned, restores stock, and fires the refund
// hook exactly once when the payment had completed.
func (s *Service) Return(orderID int) (Order, error) {
	ord, err := s.repo.Return(orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.PaymentStatus == PaymentCompleted {
		s.refund(ord)
	}
	return ord, nil
}

func (s *Service) GetByID(orderID int) (Order, error) {
	return s.repo.GetByID(orderID)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}
