package review

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

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/reviews/:productId<[0-9]+>", h.listReviews)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/reviews/:productId<[0-9]+>/comments", auth.RequirePermission(auth.PermReviewsWrite), h.submitReview)
	app.Put("/api/reviews/:reviewId<[0-9]+>/moderate", auth.RequirePermission(auth.PermReviewsModerate), h.moderateReview)
}

type submitRequest struct {
	Comment *string  `json:"comment,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
}

func (h *Handler) submitReview(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId", "code": "validation"})
	}
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(submitRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	rev, err := h.service.Submit(userID, productID, payload.Comment, payload.Rating)
	if err != nil {
		switch err {
		case ErrEmptyReview, ErrInvalidRating:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review submitted", "review": rev})
}

func (h *Handler) listReviews(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId", "code": "validation"})
	}

	reviews, err := h.service.ListApproved(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(fiber.Map{"reviews": reviews})
}

type moderateRequest struct {
	Approved int `json:"approved"`
}

func (h *Handler) moderateReview(c *fiber.Ctx) error {
	reviewID, err := strconv.Atoi(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid reviewId", "code": "validation"})
	}

	payload := new(moderateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	if err := h.service.Moderate(reviewID, payload.Approved); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Review not found", "code": "not_found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(fiber.Map{"message": "Review moderation updated"})
}
