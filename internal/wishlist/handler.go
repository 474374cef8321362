package wishlist

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
	app.Get("/api/wishlist/:userId<[0-9]+>", h.getWishlist)
	app.Post("/api/wishlist/:userId<[0-9]+>/add", auth.RequirePermission(auth.PermWishlistWrite), h.addToWishlist)
	app.Post("/api/wishlist/:userId<[0-9]+>/remove", auth.RequirePermission(auth.PermWishlistWrite), h.removeFromWishlist)
}

type wishlistRequest struct {
	ProductID int `json:"productId"`
}

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

func (h *Handler) addToWishlist(c *fiber.Ctx) error {
	userID, err := pathUserID(c)
	if err != nil {
		return respondFiberError(c, err)
	}

	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId", "code": "validation"})
	}

	item, err := h.service.Add(userID, payload.ProductID)
	if err != nil {
		switch err {
		case ErrAlreadyInWishlist:
			// Idempotent outcome, not a failure.
			return c.JSON(fiber.Map{"message": "Product already in wishlist", "item": item})
		case ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found", "code": "not_found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.JSON(fiber.Map{"message": "Product added to wishlist", "item": item})
}

func (h *Handler) removeFromWishlist(c *fiber.Ctx) error {
	userID, err := pathUserID(c)
	if err != nil {
		return respondFiberError(c, err)
	}

	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId", "code": "validation"})
	}

	if err := h.service.Remove(userID, payload.ProductID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(fiber.Map{"message": "Product removed from wishlist"})
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	userID, err := pathUserID(c)
	if err != nil {
		return respondFiberError(c, err)
	}

	items, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(fiber.Map{"wishlist": items})
}

func respondFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
