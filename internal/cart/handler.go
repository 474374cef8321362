package cart

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
	app.Get("/api/cart/:userId<[0-9]+>", h.getCart)
	app.Post("/api/cart/:userId<[0-9]+>/addProductToCart", auth.RequirePermission(auth.PermCartWrite), h.addToCart)
	app.Post("/api/cart/:userId<[0-9]+>/removeProductFromCart", auth.RequirePermission(auth.PermCartWrite), h.removeFromCart)
}

type cartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// pathUserID resolves the :userId segment and rejects requests whose token
// belongs to a different user.
func pathUserID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return 0, fiber.ErrBadRequest
	}
	tokenID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return 0, fiber.ErrUnauthorized
	}
	if tokenID != id {
		return 0, fiber.ErrForbidden
	}
	return id, nil
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	userID, err := pathUserID(c)
	if err != nil {
		return fiberError(c, err)
	}

	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId", "code": "validation"})
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	line, err := h.service.AddToCart(userID, payload.ProductID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
		case ErrProductNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Product not found", "code": "not_found"})
		case ErrInsufficientStock:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Not enough stock available", "code": "conflict"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Product added to cart", "item": line})
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	userID, err := pathUserID(c)
	if err != nil {
		return fiberError(c, err)
	}

	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId", "code": "validation"})
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	if err := h.service.RemoveFromCart(userID, payload.ProductID, payload.Quantity); err != nil {
		switch err {
		case ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
		case ErrItemNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Item not found in cart", "code": "not_found"})
		case ErrExcessRemoval:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot remove more than the quantity in cart", "code": "conflict"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Product removed from cart"})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := pathUserID(c)
	if err != nil {
		return fiberError(c, err)
	}

	lines, err := h.service.GetCart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(fiber.Map{"cart": lines})
}

func fiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
