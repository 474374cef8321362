package product

import (
	"strconv"
	"time"

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
	app.Get("/api/products", h.listProducts)
	app.Get("/api/products/search", h.searchProducts)
	app.Get("/api/products/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/products", auth.RequirePermission(auth.PermProductsManage), h.createProduct)
	app.Put("/api/products/:id<[0-9]+>", auth.RequirePermission(auth.PermProductsManage), h.updateProduct)
	app.Delete("/api/products/:id<[0-9]+>", auth.RequirePermission(auth.PermProductsManage), h.deleteProduct)
	app.Put("/api/products/:id<[0-9]+>/stock", auth.RequirePermission(auth.PermProductsManage), h.setStock)
	app.Put("/api/products/:id<[0-9]+>/pricing", auth.RequirePermission(auth.PermProductsPrice), h.setPricing)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": h.service.List()})
}

func (h *Handler) searchProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing search query", "code": "validation"})
	}
	return c.JSON(fiber.Map{"products": h.service.Search(query)})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id", "code": "validation"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found", "code": "not_found"})
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	if payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product name is required", "code": "validation"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	payload.CreatedAt = now
	payload.UpdatedAt = now

	created, err := h.service.Create(*payload)
	if err != nil {
		switch err {
		case ErrInvalidPrice, ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id", "code": "validation"})
	}

	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	payload.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := h.service.Update(id, *payload)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found", "code": "not_found"})
		case ErrInvalidPrice, ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id", "code": "validation"})
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found", "code": "not_found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

type pricingRequest struct {
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
}

func (h *Handler) setPricing(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id", "code": "validation"})
	}

	payload := new(pricingRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	updated, err := h.service.SetPricing(id, payload.Price, payload.DiscountedPrice, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found", "code": "not_found"})
		case ErrInvalidPrice:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}
	return c.JSON(updated)
}

type stockRequest struct {
	QuantityInStock int `json:"quantityInStock"`
}

func (h *Handler) setStock(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id", "code": "validation"})
	}

	payload := new(stockRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	updated, err := h.service.SetStock(id, payload.QuantityInStock, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found", "code": "not_found"})
		case ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
		}
	}
	return c.JSON(updated)
}
