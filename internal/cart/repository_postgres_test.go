package cart

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAddToCart_CommitsOnSufficientStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"name", "category", "price", "discounted_price", "quantity_in_stock"}).
			AddRow("Colombian Supremo", "Beans", 18.5, nil, 10))
	mock.ExpectExec("UPDATE products").WithArgs(4, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO shopping_cart").
		WithArgs(7, 1, 4, "Colombian Supremo", 18.5, nil, "Beans", "2026-01-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"quantity", "product_name", "price", "discounted_price", "category", "added_at"}).
			AddRow(4, "Colombian Supremo", 18.5, nil, "Beans", "2026-01-01T00:00:00Z"))
	mock.ExpectCommit()

	line, err := repo.AddToCart(7, 1, 4, "2026-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("expected add to succeed, got %v", err)
	}
	if line.Quantity != 4 || line.ProductName != "Colombian Supremo" {
		t.Fatalf("unexpected line %+v", line)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddToCart_RollsBackWhenStockShort(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"name", "category", "price", "discounted_price", "quantity_in_stock"}).
			AddRow("Moka Pot", "Equipment", 32.0, nil, 3))
	mock.ExpectRollback()

	if _, err := repo.AddToCart(7, 2, 5, "2026-01-01T00:00:00Z"); err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddToCart_LostRaceRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// stock read fine, but the guarded UPDATE matched no row
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"name", "category", "price", "discounted_price", "quantity_in_stock"}).
			AddRow("Moka Pot", "Equipment", 32.0, nil, 3))
	mock.ExpectExec("UPDATE products").WithArgs(3, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if _, err := repo.AddToCart(7, 2, 3, "2026-01-01T00:00:00Z"); err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemoveFromCart_ExcessRemovalRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT quantity FROM shopping_cart").WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(2))
	mock.ExpectRollback()

	if err := repo.RemoveFromCart(7, 1, 5); err != ErrExcessRemoval {
		t.Fatalf("expected ErrExcessRemoval, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemoveFromCart_ExactQuantityDeletesLine(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT quantity FROM shopping_cart").WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(2))
	mock.ExpectExec("DELETE FROM shopping_cart").WithArgs(7, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.RemoveFromCart(7, 1, 2); err != nil {
		t.Fatalf("expected removal to succeed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
