package cart

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	lockProductQuery = `
		SELECT name, category, price, discounted_price, quantity_in_stock
		FROM products
		WHERE product_id = $1
		FOR UPDATE
	`
	decrementStockQuery = `
		UPDATE products
		SET quantity_in_stock = quantity_in_stock - $1
		WHERE product_id = $2 AND quantity_in_stock >= $1
	`
	// On conflict only the quantity moves; the snapshot columns keep their
	// add-time values.
	upsertLineQuery = `
		INSERT INTO shopping_cart (user_id, product_id, quantity, product_name, price, discounted_price, category, added_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = shopping_cart.quantity + EXCLUDED.quantity
		RETURNING quantity, product_name, price, discounted_price, category, added_at
	`
	getLineQuantityQuery = `
		SELECT quantity FROM shopping_cart WHERE user_id = $1 AND product_id = $2
	`
	decrementLineQuery = `
		UPDATE shopping_cart SET quantity = quantity - $3 WHERE user_id = $1 AND product_id = $2
	`
	deleteLineQuery = `
		DELETE FROM shopping_cart WHERE user_id = $1 AND product_id = $2
	`
	getCartQuery = `
		SELECT user_id, product_id, quantity, product_name, price, discounted_price, category, added_at
		FROM shopping_cart
		WHERE user_id = $1
		ORDER BY added_at, product_id
	`
	clearCartQuery = `DELETE FROM shopping_cart WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// AddToCart locks the product row, verifies stock, decrements it and upserts
// the cart line inside one transaction so concurrent adds cannot oversell.
func (r *PostgresRepository) AddToCart(userID, productID, qty int, addedAt string) (Line, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Line{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var (
		name       string
		category   sql.NullString
		price      float64
		discounted sql.NullFloat64
		stock      int
	)
	if err := tx.QueryRow(lockProductQuery, productID).Scan(&name, &category, &price, &discounted, &stock); err != nil {
		if err == sql.ErrNoRows {
			return Line{}, ErrProductNotFound
		}
		return Line{}, err
	}
	if stock < qty {
		return Line{}, ErrInsufficientStock
	}

	result, err := tx.Exec(decrementStockQuery, qty, productID)
	if err != nil {
		return Line{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Line{}, err
	}
	if affected == 0 {
		return Line{}, ErrInsufficientStock
	}

	line := Line{UserID: userID, ProductID: productID}
	var lineDiscounted sql.NullFloat64
	var lineCategory sql.NullString
	if err := tx.QueryRow(
		upsertLineQuery,
		userID,
		productID,
		qty,
		name,
		price,
		discounted,
		category,
		addedAt,
	).Scan(&line.Quantity, &line.ProductName, &line.Price, &lineDiscounted, &lineCategory, &line.AddedAt); err != nil {
		return Line{}, err
	}
	if lineDiscounted.Valid {
		line.DiscountedPrice = &lineDiscounted.Float64
	}
	if lineCategory.Valid {
		line.Category = lineCategory.String
	}

	if err := tx.Commit(); err != nil {
		return Line{}, err
	}
	return line, nil
}

func (r *PostgresRepository) RemoveFromCart(userID, productID, qty int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current int
	if err := tx.QueryRow(getLineQuantityQuery, userID, productID).Scan(&current); err != nil {
		if err == sql.ErrNoRows {
			return ErrItemNotFound
		}
		return err
	}
	if qty > current {
		return ErrExcessRemoval
	}

	if qty == current {
		if _, err := tx.Exec(deleteLineQuery, userID, productID); err != nil {
			return err
		}
	} else {
		if _, err := tx.Exec(decrementLineQuery, userID, productID, qty); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetCart(userID int) ([]Line, error) {
	rows, err := r.db.Query(getCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Line, 0)
	for rows.Next() {
		var l Line
		var discounted sql.NullFloat64
		var category sql.NullString
		var addedAt sql.NullString
		if err := rows.Scan(&l.UserID, &l.ProductID, &l.Quantity, &l.ProductName, &l.Price, &discounted, &category, &addedAt); err != nil {
			return nil, err
		}
		if discounted.Valid {
			l.DiscountedPrice = &discounted.Float64
		}
		if category.Valid {
			l.Category = category.String
		}
		if addedAt.Valid {
			l.AddedAt = addedAt.String
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(clearCartQuery, userID)
	return err
}
