package invoice

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func seedInvoices(t *testing.T, repo *InMemoryRepository) {
	t.Helper()
	rows := []Invoice{
		{OrderID: 1, UserID: 7, TotalPrice: 40.0, Date: "2026-01-10T09:00:00Z"},
		{OrderID: 2, UserID: 8, TotalPrice: 60.0, Date: "2026-01-20T18:30:00Z"},
		{OrderID: 3, UserID: 7, TotalPrice: 25.0, Date: "2026-02-02T12:00:00Z"},
	}
	for _, inv := range rows {
		if _, err := repo.Create(inv); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
}

func TestReport_SumsRevenueAndProfit(t *testing.T) {
	repo := NewInMemoryRepository()
	seedInvoices(t, repo)
	service := NewService(repo)

	report, err := service.Report("2026-01-01T00:00:00Z", "2026-01-31T23:59:59Z")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report.Invoices) != 2 {
		t.Fatalf("expected 2 invoices in January, got %d", len(report.Invoices))
	}
	if report.Revenue != 100.0 {
		t.Fatalf("expected revenue 100, got %.2f", report.Revenue)
	}
	if report.Profit != 25.0 {
		t.Fatalf("expected profit 25, got %.2f", report.Profit)
	}
}

func TestReport_InvalidRange(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	cases := []struct{ start, end string }{
		{"", "2026-01-31"},
		{"2026-01-01", ""},
		{"2026-02-01", "2026-01-01"},
	}
	for _, tc := range cases {
		if _, err := service.Report(tc.start, tc.end); err != ErrInvalidRange {
			t.Fatalf("expected ErrInvalidRange for %q..%q, got %v", tc.start, tc.end, err)
		}
	}
}

func makeAppWithInvoiceHandler(iHandler *Handler, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		claims := jwt.MapClaims{"user_id": 7, "role": role}
		c.Locals("user", &jwt.Token{Claims: claims})
		return c.Next()
	})
	iHandler.RegisterProtectedRoutes(app)
	return app
}

func TestReportRoute_PadsDateOnlyBounds(t *testing.T) {
	repo := NewInMemoryRepository()
	seedInvoices(t, repo)
	handler := NewHandler(NewService(repo))
	app := makeAppWithInvoiceHandler(handler, "Sales Manager")

	// 2026-01-20 as endDate must include the 18:30 invoice of that day
	req := httptest.NewRequest("GET", "/api/orders/invoices?startDate=2026-01-01&endDate=2026-01-20", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}

func TestReportRoute_CustomerForbidden(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository()))
	app := makeAppWithInvoiceHandler(handler, "Customer")

	req := httptest.NewRequest("GET", "/api/orders/invoices?startDate=2026-01-01&endDate=2026-01-31", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for a customer, got %d", res.StatusCode)
	}
}
