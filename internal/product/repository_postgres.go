package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `product_id, name, description, category, price, discounted_price, quantity_in_stock, model, serial_number, warranty_status, distributor, created_at, updated_at`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY product_id
	`
	listProductsByIDsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)
	`
	searchProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY product_id
	`
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, description, category, price, discounted_price, quantity_in_stock, model, serial_number, warranty_status, distributor, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING product_id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			description = $2,
			category = $3,
			price = $4,
			discounted_price = $5,
			quantity_in_stock = $6,
			model = $7,
			serial_number = $8,
			warranty_status = $9,
			distributor = $10,
			updated_at = $11
		WHERE product_id = $12
	`
	setPricingQuery = `
		UPDATE products
		SET price = $1, discounted_price = $2, updated_at = $3
		WHERE product_id = $4
	`
	setStockQuery = `
		UPDATE products
		SET quantity_in_stock = $1, updated_at = $2
		WHERE product_id = $3
	`
	deleteProductQuery = `DELETE FROM products WHERE product_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	rows, err := r.db.Query(listProductsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PostgresRepository) Search(query string) []Product {
	rows, err := r.db.Query(searchProductsQuery, query)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var id int
	err := r.db.QueryRow(
		insertProductQuery,
		p.Name,
		p.Description,
		p.Category,
		p.Price,
		nullFloat(p.DiscountedPrice),
		p.QuantityInStock,
		p.Model,
		p.SerialNumber,
		p.WarrantyStatus,
		p.Distributor,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	result, err := r.db.Exec(
		updateProductQuery,
		p.Name,
		p.Description,
		p.Category,
		p.Price,
		nullFloat(p.DiscountedPrice),
		p.QuantityInStock,
		p.Model,
		p.SerialNumber,
		p.WarrantyStatus,
		p.Distributor,
		p.UpdatedAt,
		id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetPricing(id int, price float64, discounted *float64, updatedAt string) (Product, error) {
	result, err := r.db.Exec(setPricingQuery, price, nullFloat(discounted), updatedAt, id)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) SetStock(id int, quantity int, updatedAt string) (Product, error) {
	result, err := r.db.Exec(setStockQuery, quantity, updatedAt, id)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		discounted   sql.NullFloat64
		model        sql.NullString
		serialNumber sql.NullString
		warranty     sql.NullString
		distributor  sql.NullString
		createdAt    sql.NullString
		updatedAt    sql.NullString
	)

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Price,
		&discounted,
		&p.QuantityInStock,
		&model,
		&serialNumber,
		&warranty,
		&distributor,
		&createdAt,
		&updatedAt,
	); err != nil {
		return Product{}, err
	}

	if discounted.Valid {
		p.DiscountedPrice = &discounted.Float64
	}
	if model.Valid {
		p.Model = model.String
	}
	if serialNumber.Valid {
		p.SerialNumber = serialNumber.String
	}
	if warranty.Valid {
		p.WarrantyStatus = warranty.String
	}
	if distributor.Valid {
		p.Distributor = distributor.String
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.String
	}

	return p, nil
}
