package invoice

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertInvoiceQuery = `
		INSERT INTO invoices (order_id, user_id, total_price, date)
		VALUES ($1,$2,$3,$4)
		RETURNING invoice_id
	`
	listInvoicesByRangeQuery = `
		SELECT invoice_id, order_id, user_id, total_price, date
		FROM invoices
		WHERE date >= $1 AND date <= $2
		ORDER BY date, invoice_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(inv Invoice) (Invoice, error) {
	if err := r.db.QueryRow(insertInvoiceQuery, inv.OrderID, inv.UserID, inv.TotalPrice, inv.Date).Scan(&inv.ID); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (r *PostgresRepository) ListByDateRange(start, end string) ([]Invoice, error) {
	rows, err := r.db.Query(listInvoicesByRangeQuery, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Invoice, 0)
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.OrderID, &inv.UserID, &inv.TotalPrice, &inv.Date); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
