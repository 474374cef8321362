package product

import "testing"

func TestCreate_Validation(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	if _, err := service.Create(Product{Name: "Bad", Price: -1}); err != ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := service.Create(Product{Name: "Bad", Price: 10, QuantityInStock: -3}); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	p, err := service.Create(Product{Name: "Good", Price: 10, QuantityInStock: 5})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("expected an assigned id, got %+v", p)
	}
}

func TestSetPricing_RejectsNegativeDiscount(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{ID: 1, Name: "Beans", Price: 20, QuantityInStock: 5}})
	service := NewService(repo)

	bad := -2.0
	if _, err := service.SetPricing(1, 20, &bad, "now"); err != ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	good := 15.0
	p, err := service.SetPricing(1, 20, &good, "now")
	if err != nil {
		t.Fatalf("expected pricing to succeed, got %v", err)
	}
	if p.EffectivePrice() != 15.0 {
		t.Fatalf("expected effective price 15, got %.2f", p.EffectivePrice())
	}

	// clearing the discount falls back to the list price
	p, err = service.SetPricing(1, 20, nil, "now")
	if err != nil {
		t.Fatalf("expected clearing to succeed, got %v", err)
	}
	if p.EffectivePrice() != 20.0 {
		t.Fatalf("expected effective price 20, got %.2f", p.EffectivePrice())
	}
}

func TestEffectivePrice(t *testing.T) {
	d := 8.0
	p := Product{Price: 10.0, DiscountedPrice: &d}
	if p.EffectivePrice() != 8.0 {
		t.Fatalf("expected discount to win, got %.2f", p.EffectivePrice())
	}
	p.DiscountedPrice = nil
	if p.EffectivePrice() != 10.0 {
		t.Fatalf("expected list price, got %.2f", p.EffectivePrice())
	}
}
