package invoice

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selinkorkmz/your-coffee-backend/internal/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterProtectedRoutes must run before the order handler registers its
// numeric :orderId routes so the literal path wins.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/orders/invoices", auth.RequirePermission(auth.PermInvoicesReport), h.report)
}

func (h *Handler) report(c *fiber.Ctx) error {
	start := c.Query("startDate")
	end := c.Query("endDate")

	// Date-only bounds cover the whole end day.
	if len(start) == len("2006-01-02") {
		start += "T00:00:00Z"
	}
	if len(end) == len("2006-01-02") {
		end += "T23:59:59Z"
	}

	report, err := h.service.Report(start, end)
	if err != nil {
		if err == ErrInvalidRange {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "startDate and endDate are required and must form a valid range", "code": "validation"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(report)
}
