package user

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister_HashesPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	created, err := service.Register(User{Email: "ada@example.com", Password: "s3cret", Name: "Ada"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Password == "s3cret" {
		t.Fatalf("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")) != nil {
		t.Fatalf("stored hash does not verify against the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	if _, err := service.Register(User{Email: "ada@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := service.Register(User{Email: "ada@example.com", Password: "other"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate_SameErrorForBothFailures(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)
	if _, err := service.Register(User{Email: "ada@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// unknown email and wrong password are indistinguishable to the caller
	if _, err := service.Authenticate("nobody@example.com", "s3cret"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := service.Authenticate("ada@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	u, err := service.Authenticate("ada@example.com", "s3cret")
	if err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
}
