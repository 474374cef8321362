package wishlist

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getProductSnapshotQuery = `
		SELECT name, category, price, discounted_price
		FROM products
		WHERE product_id = $1
	`
	insertItemQuery = `
		INSERT INTO wishlist (user_id, product_id, product_name, price, discounted_price, category, added_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`
	deleteItemQuery = `DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`
	listItemsQuery  = `
		SELECT user_id, product_id, product_name, price, discounted_price, category, added_at
		FROM wishlist
		WHERE user_id = $1
		ORDER BY added_at, product_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(userID, productID int, addedAt string) (Item, error) {
	var (
		name       string
		category   sql.NullString
		price      float64
		discounted sql.NullFloat64
	)
	if err := r.db.QueryRow(getProductSnapshotQuery, productID).Scan(&name, &category, &price, &discounted); err != nil {
		if err == sql.ErrNoRows {
			return Item{}, ErrProductNotFound
		}
		return Item{}, err
	}

	item := Item{
		UserID:      userID,
		ProductID:   productID,
		ProductName: name,
		Price:       price,
		AddedAt:     addedAt,
	}
	if category.Valid {
		item.Category = category.String
	}
	if discounted.Valid {
		item.DiscountedPrice = &discounted.Float64
	}

	result, err := r.db.Exec(insertItemQuery, userID, productID, name, price, discounted, category, addedAt)
	if err != nil {
		return Item{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Item{}, err
	}
	if affected == 0 {
		return item, ErrAlreadyInWishlist
	}
	return item, nil
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	_, err := r.db.Exec(deleteItemQuery, userID, productID)
	return err
}

func (r *PostgresRepository) List(userID int) ([]Item, error) {
	rows, err := r.db.Query(listItemsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		var discounted sql.NullFloat64
		var category sql.NullString
		var addedAt sql.NullString
		if err := rows.Scan(&it.UserID, &it.ProductID, &it.ProductName, &it.Price, &discounted, &category, &addedAt); err != nil {
			return nil, err
		}
		if discounted.Valid {
			it.DiscountedPrice = &discounted.Float64
		}
		if category.Valid {
			it.Category = category.String
		}
		if addedAt.Valid {
			it.AddedAt = addedAt.String
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
