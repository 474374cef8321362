package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selinkorkmz/your-coffee-backend/internal/auth"
)

type Handler struct {
	service   ServiceInterface
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHandler(service ServiceInterface, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/auth/register", h.register)
	app.Post("/api/auth/login", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/users/profile", h.getProfile)
	app.Put("/api/users/profile", auth.RequirePermission(auth.PermProfileWrite), h.updateProfile)
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	TaxID       string `json:"taxId"`
	HomeAddress string `json:"homeAddress"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields", "code": "validation"})
	}

	role := payload.Role
	if role == "" {
		role = auth.RoleCustomer
	}
	if role != auth.RoleCustomer && role != auth.RoleSalesManager && role != auth.RoleProductManager {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role", "code": "validation"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Register(User{
		Email:       payload.Email,
		Password:    payload.Password,
		Name:        payload.Name,
		Role:        role,
		TaxID:       payload.TaxID,
		HomeAddress: payload.HomeAddress,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if err == ErrEmailExists {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already in use", "code": "conflict"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"userId": created.ID})
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email or password", "code": "validation"})
	}

	signed, err := auth.IssueToken(h.jwtSecret, h.tokenTTL, u.ID, u.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token", "code": "persistence"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    sanitizeUser(u),
		"token":   signed,
	})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	u, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found", "code": "not_found"})
	}

	return c.JSON(sanitizeUser(u))
}

type profileUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	TaxID       *string `json:"taxId,omitempty"`
	HomeAddress *string `json:"homeAddress,omitempty"`
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	existing, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found", "code": "not_found"})
	}

	payload := new(profileUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "code": "validation"})
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.TaxID != nil {
		existing.TaxID = *payload.TaxID
	}
	if payload.HomeAddress != nil {
		existing.HomeAddress = *payload.HomeAddress
	}
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := h.service.UpdateProfile(userID, existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "code": "persistence"})
	}

	return c.JSON(sanitizeUser(updated))
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
