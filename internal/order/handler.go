package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/selinkorkmz/your-coffee-backend/internal/auth"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/orders", h.listOrders)
	app.Post("/api/orders/checkout", auth.RequirePermission(auth.PermOrdersPlace), h.checkout)
	app.Post("/api/orders/cancel", auth.RequirePermission(auth.PermOrdersCancel), h.cancelOrder)
	app.Post("/api/orders/return", auth.RequirePermission(auth.PermOrdersReturn), h.returnOrder)
	app.Put("/api/orders/status/:orderId<[0-9]+>", auth.RequirePermission(auth.PermOrdersStatus), h.updateStatus)
	app.Post("/api/orders/:orderId<[0-9]+>/confirmPayment", auth.RequirePermission(auth.PermOrdersPlace), h.confirmPayment)
	app.Get("/api/orders/:orderId<[0-9]+>/payment-status", h.paymentStatus)
}

type checkoutRequest struct {
	PaymentMethod   string `json:"paymentMethod"`
	DeliveryAddress string `json:"deliveryAddress"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	ord, err := h.service.Checkout(userID, payload.PaymentMethod, payload.DeliveryAddress)
	if err != nil {
		switch err {
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cart is empty", "code": "validation"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Order created", "order": ord})
}

func (h *Handler) confirmPayment(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid orderId", "code": "validation"})
	}

	ord, err := h.service.ConfirmPayment(orderID, userID)
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No pending payment found for this order", "code": "not_found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Payment completed", "order": ord})
}

// paymentStatus preserves a quirk of the original API: an unknown order id
// yields HTTP 200 with the literal status string "Order not found.".
func (h *Handler) paymentStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid orderId", "code": "validation"})
	}

	status, err := h.service.PaymentStatus(orderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(fiber.Map{"paymentStatus": status})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid orderId", "code": "validation"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	if err := h.service.UpdateStatus(orderID, Status(payload.Status)); err != nil {
		switch err {
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order status", "code": "validation"})
		case ErrOrderNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Order not found", "code": "not_found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Order status updated"})
}

type orderIDRequest struct {
	OrderID int `json:"orderId"`
}

func (h *Handler) cancelOrder(c *fiber.Ctx) error {
	payload := new(orderIDRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	if _, err := h.service.Cancel(payload.OrderID); err != nil {
		switch err {
		case ErrCannotCancel:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Order cannot be canceled", "code": "state"})
		case ErrOrderNotFound:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Order not found", "code": "not_found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Order canceled and stock restored"})
}

func (h *Handler) returnOrder(c *fiber.Ctx) error {
	payload := new(orderIDRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	if _, err := h.service.Return(payload.OrderID); err != nil {
		switch err {
		case ErrNotReturnable:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Order is not returnable", "code": "state"})
		case ErrOrderNotFound:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Order not found", "code": "not_found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Order returned and stock restored"})
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(fiber.Map{"orders": orders})
}
