package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithUserHandler(uHandler *Handler) *fiber.App {
	app := fiber.New()
	uHandler.RegisterPublicRoutes(app)
	return app
}

func TestRegisterRoute_DefaultsRoleToCustomer(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	handler := NewHandler(NewService(repo), "test-secret", time.Hour)
	app := makeAppWithUserHandler(handler)

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"email":"ada@example.com","password":"s3cret","name":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	u, err := repo.GetByEmail("ada@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if u.Role != "Customer" {
		t.Fatalf("expected default role Customer, got %q", u.Role)
	}
}

func TestRegisterRoute_RejectsUnknownRole(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	handler := NewHandler(NewService(repo), "test-secret", time.Hour)
	app := makeAppWithUserHandler(handler)

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"email":"ada@example.com","password":"s3cret","name":"Ada","role":"Admin"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", res.StatusCode)
	}
}

func TestLoginRoute_ReturnsUsableToken(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)
	handler := NewHandler(service, "test-secret", time.Hour)
	app := makeAppWithUserHandler(handler)

	reg := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"email":"ada@example.com","password":"s3cret","name":"Ada","role":"Sales Manager"}`))
	reg.Header.Set("Content-Type", "application/json")
	if res, _ := app.Test(reg); res.StatusCode != fiber.StatusCreated {
		t.Fatalf("register failed with %d", res.StatusCode)
	}

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"ada@example.com","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for login, got %d", res.StatusCode)
	}

	b, _ := io.ReadAll(res.Body)
	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.User.Password != "" {
		t.Fatalf("password leaked in login response")
	}

	tok, err := jwt.Parse(body.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != "Sales Manager" {
		t.Fatalf("expected role claim, got %v", claims["role"])
	}
	if int(claims["user_id"].(float64)) != body.User.ID {
		t.Fatalf("user_id claim %v does not match user %d", claims["user_id"], body.User.ID)
	}
}

func TestLoginRoute_BadCredentials(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	handler := NewHandler(NewService(repo), "test-secret", time.Hour)
	app := makeAppWithUserHandler(handler)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"nobody@example.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad credentials, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Invalid email or password") {
		t.Fatalf("unexpected body: %s", string(b))
	}
}
