package order

import (
	"testing"

	"github.com/selinkorkmz/your-coffee-backend/internal/cart"
	"github.com/selinkorkmz/your-coffee-backend/internal/invoice"
	"github.com/selinkorkmz/your-coffee-backend/internal/product"
)

func catalog() []product.Product {
	return []product.Product{
		{ID: 101, Name: "Ethiopian Yirgacheffe", Price: 21.0, Category: "Beans", QuantityInStock: 10},
		{ID: 102, Name: "Hand Grinder", Price: 45.0, Category: "Equipment", QuantityInStock: 4},
	}
}

// fixture wires a cart, an order repository sharing the same catalog, and an
// in-memory invoice store, the same shape main() builds against Postgres.
type fixture struct {
	cartRepo  *cart.InMemoryRepository
	cartSvc   *cart.Service
	orderRepo *InMemoryRepository
	invoices  *invoice.Service
	refunds   int
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		cartRepo:  cart.NewInMemoryRepository(catalog()),
		orderRepo: NewInMemoryRepository(catalog()),
		invoices:  invoice.NewService(invoice.NewInMemoryRepository()),
	}
	f.cartSvc = cart.NewService(f.cartRepo)
	f.service = NewService(f.orderRepo, f.cartSvc, f.invoices, func(ord Order) { f.refunds++ })
	return f
}

func (f *fixture) fillCart(t *testing.T, userID, productID, qty int) {
	t.Helper()
	if _, err := f.cartSvc.AddToCart(userID, productID, qty); err != nil {
		t.Fatalf("could not fill cart: %v", err)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newFixture(t)

	if _, err := f.service.Checkout(7, "credit_card", "somewhere"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_SnapshotsCartLines(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 2)
	f.fillCart(t, 7, 102, 1)

	ord, err := f.service.Checkout(7, "credit_card", "12 Bean St")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if ord.Status != StatusProcessing || ord.PaymentStatus != PaymentPending {
		t.Fatalf("unexpected initial state %q/%q", ord.Status, ord.PaymentStatus)
	}
	if len(ord.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(ord.Items))
	}
	if ord.TotalPrice != 2*21.0+45.0 {
		t.Fatalf("unexpected total %.2f", ord.TotalPrice)
	}
	if ord.TransactionID == "" {
		t.Fatalf("expected a transaction reference")
	}

	// checkout leaves the cart alone until the payment completes
	lines, _ := f.cartSvc.GetCart(7)
	if len(lines) != 2 {
		t.Fatalf("expected cart to survive checkout, got %d lines", len(lines))
	}
}

func TestConfirmPayment_ClearsWholeCartAndRecordsInvoice(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 2)

	ord, err := f.service.Checkout(7, "credit_card", "12 Bean St")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// a line added after checkout is still swept away by the confirm
	f.fillCart(t, 7, 102, 1)

	paid, err := f.service.ConfirmPayment(ord.ID, 7)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if paid.PaymentStatus != PaymentCompleted {
		t.Fatalf("expected payment Completed, got %q", paid.PaymentStatus)
	}

	lines, _ := f.cartSvc.GetCart(7)
	if len(lines) != 0 {
		t.Fatalf("expected the entire cart cleared, got %d lines", len(lines))
	}

	report, err := f.invoices.Report("2000-01-01", "2999-12-31")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report.Invoices) != 1 || report.Invoices[0].OrderID != ord.ID {
		t.Fatalf("expected one invoice for order %d, got %+v", ord.ID, report.Invoices)
	}

	// confirming twice finds no pending payment
	if _, err := f.service.ConfirmPayment(ord.ID, 7); err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound on second confirm, got %v", err)
	}
}

func TestConfirmPayment_WrongUser(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 1)
	ord, _ := f.service.Checkout(7, "credit_card", "12 Bean St")

	if _, err := f.service.ConfirmPayment(ord.ID, 8); err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound for a foreign user, got %v", err)
	}
}

func TestPaymentStatus_UnknownOrder(t *testing.T) {
	f := newFixture(t)

	status, err := f.service.PaymentStatus(9999)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if status != PaymentStatusNotFound {
		t.Fatalf("expected %q, got %q", PaymentStatusNotFound, status)
	}
}

func TestCancel_RestoresStock(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 2)
	ord, _ := f.service.Checkout(7, "credit_card", "12 Bean St")

	before := f.orderRepo.StockOf(101)
	if _, err := f.service.Cancel(ord.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if got := f.orderRepo.StockOf(101); got != before+2 {
		t.Fatalf("expected stock %d after cancel, got %d", before+2, got)
	}

	canceled, _ := f.service.GetByID(ord.ID)
	if canceled.Status != StatusCanceled {
		t.Fatalf("expected status Canceled, got %q", canceled.Status)
	}

	// a canceled order cannot be canceled again
	if _, err := f.service.Cancel(ord.ID); err == nil {
		t.Fatalf("expected second cancel to fail")
	}
}

func TestCancel_DeliveredOrder(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 1)
	ord, _ := f.service.Checkout(7, "credit_card", "12 Bean St")
	if err := f.service.UpdateStatus(ord.ID, StatusDelivered); err != nil {
		t.Fatalf("setup status update failed: %v", err)
	}

	if _, err := f.service.Cancel(ord.ID); err != ErrCannotCancel {
		t.Fatalf("expected ErrCannotCancel, got %v", err)
	}
}

func TestReturn_RequiresShippedOrder(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 1)
	ord, _ := f.service.Checkout(7, "credit_card", "12 Bean St")

	// still Processing: not returnable
	if _, err := f.service.Return(ord.ID); err != ErrNotReturnable {
		t.Fatalf("expected ErrNotReturnable, got %v", err)
	}
}

func TestReturn_FiresRefundOnceForPaidOrder(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 3)
	ord, _ := f.service.Checkout(7, "credit_card", "12 Bean St")
	if _, err := f.service.ConfirmPayment(ord.ID, 7); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if err := f.service.UpdateStatus(ord.ID, StatusDelivered); err != nil {
		t.Fatalf("setup status update failed: %v", err)
	}

	before := f.orderRepo.StockOf(101)
	if _, err := f.service.Return(ord.ID); err != nil {
		t.Fatalf("return failed: %v", err)
	}
	if f.refunds != 1 {
		t.Fatalf("expected exactly one refund, got %d", f.refunds)
	}
	if got := f.orderRepo.StockOf(101); got != before+3 {
		t.Fatalf("expected stock %d after return, got %d", before+3, got)
	}

	// a returned order cannot be returned again, and no second refund fires
	if _, err := f.service.Return(ord.ID); err != ErrNotReturnable {
		t.Fatalf("expected ErrNotReturnable on second return, got %v", err)
	}
	if f.refunds != 1 {
		t.Fatalf("refund fired again, got %d", f.refunds)
	}
}

func TestReturn_UnpaidOrderSkipsRefund(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 1)
	ord, _ := f.service.Checkout(7, "credit_card", "12 Bean St")
	if err := f.service.UpdateStatus(ord.ID, StatusInTransit); err != nil {
		t.Fatalf("setup status update failed: %v", err)
	}

	if _, err := f.service.Return(ord.ID); err != nil {
		t.Fatalf("return failed: %v", err)
	}
	if f.refunds != 0 {
		t.Fatalf("expected no refund for a pending payment, got %d", f.refunds)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	f.fillCart(t, 7, 101, 1)
	ord, _ := f.service.Checkout(7, "credit_card", "12 Bean St")

	if err := f.service.UpdateStatus(ord.ID, Status("Teleported")); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
