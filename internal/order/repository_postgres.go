package order

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `order_id, user_id, total_price, order_status, order_date, delivery_address, payment_status, payment_method, transaction_id, transaction_date`

	insertOrderQuery = `
		INSERT INTO orders (user_id, total_price, order_status, order_date, delivery_address, payment_status, payment_method, transaction_id, transaction_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING order_id
	`
	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, price_at_purchase, line_total)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING order_item_id
	`
	getOrderByIDQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = $1
	`
	listOrdersByUserQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id
	`
	listItemsByOrderIDsQuery = `
		SELECT order_item_id, order_id, product_id, product_name, quantity, price_at_purchase, line_total
		FROM order_items
		WHERE order_id = ANY($1::int[])
		ORDER BY order_item_id
	`
	confirmPaymentQuery = `
		UPDATE orders
		SET payment_status = $1, order_status = $2, transaction_date = $3
		WHERE order_id = $4 AND user_id = $5 AND payment_status = $6
	`
	getPaymentStatusQuery = `SELECT payment_status FROM orders WHERE order_id = $1`
	updateStatusQuery     = `UPDATE orders SET order_status = $1 WHERE order_id = $2`
	lockOrderStatusQuery  = `SELECT order_status FROM orders WHERE order_id = $1 FOR UPDATE`
	restoreStockQuery     = `UPDATE products SET quantity_in_stock = quantity_in_stock + $1 WHERE product_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := tx.QueryRow(
		insertOrderQuery,
		ord.UserID,
		ord.TotalPrice,
		ord.Status,
		ord.OrderDate,
		ord.DeliveryAddress,
		ord.PaymentStatus,
		ord.PaymentMethod,
		ord.TransactionID,
		nullString(ord.TransactionDate),
	).Scan(&ord.ID); err != nil {
		return Order{}, err
	}

	for i := range ord.Items {
		item := &ord.Items[i]
		item.OrderID = ord.ID
		if err := tx.QueryRow(
			insertOrderItemQuery,
			ord.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.PriceAtPurchase,
			item.LineTotal,
		).Scan(&item.ID); err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(getOrderByIDQuery, id)
	ord, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrOrderNotFound
		}
		return Order{}, err
	}

	items, err := r.listItems([]int{id})
	if err != nil {
		return Order{}, err
	}
	ord.Items = items
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	ids := make([]int, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
		ids = append(ids, ord.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.listItems(ids)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[int][]Item, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) ConfirmPayment(orderID, userID int, transactionDate string) (Order, error) {
	result, err := r.db.Exec(confirmPaymentQuery, PaymentCompleted, StatusProcessing, transactionDate, orderID, userID, PaymentPending)
	if err != nil {
		return Order{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Order{}, err
	}
	if affected == 0 {
		return Order{}, ErrOrderNotFound
	}
	return r.GetByID(orderID)
}

func (r *PostgresRepository) PaymentStatus(orderID int) (string, error) {
	var status string
	if err := r.db.QueryRow(getPaymentStatusQuery, orderID).Scan(&status); err != nil {
		if err == sql.ErrNoRows {
			return PaymentStatusNotFound, nil
		}
		return "", err
	}
	return status, nil
}

func (r *PostgresRepository) UpdateStatus(orderID int, status Status) error {
	result, err := r.db.Exec(updateStatusQuery, status, orderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Cancel flips the order to Canceled and restores stock for every item in
// one transaction.
func (r *PostgresRepository) Cancel(orderID int) (Order, error) {
	if err := r.closeOut(orderID, StatusCanceled); err != nil {
		return Order{}, err
	}
	return r.GetByID(orderID)
}

// Return flips the order to Returned and restores stock for every item in
// one transaction.
func (r *PostgresRepository) Return(orderID int) (Order, error) {
	if err := r.closeOut(orderID, StatusReturned); err != nil {
		return Order{}, err
	}
	return r.GetByID(orderID)
}

func (r *PostgresRepository) closeOut(orderID int, target Status) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current Status
	if err := tx.QueryRow(lockOrderStatusQuery, orderID).Scan(&current); err != nil {
		if err == sql.ErrNoRows {
			return ErrOrderNotFound
		}
		return err
	}
	switch target {
	case StatusCanceled:
		if !CanCancel(current) {
			return ErrCannotCancel
		}
	case StatusReturned:
		if !CanReturn(current) {
			return ErrNotReturnable
		}
	}

	if _, err := tx.Exec(updateStatusQuery, target, orderID); err != nil {
		return err
	}

	rows, err := tx.Query(`SELECT product_id, quantity FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return err
	}
	defer rows.Close()

	type restore struct {
		productID int
		quantity  int
	}
	restores := make([]restore, 0)
	for rows.Next() {
		var x restore
		if err := rows.Scan(&x.productID, &x.quantity); err != nil {
			return err
		}
		restores = append(restores, x)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, x := range restores {
		if _, err := tx.Exec(restoreStockQuery, x.quantity, x.productID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) listItems(orderIDs []int) ([]Item, error) {
	rows, err := r.db.Query(listItemsByOrderIDsQuery, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.PriceAtPurchase, &item.LineTotal); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(scanner rowScanner) (Order, error) {
	ord := Order{}
	var (
		deliveryAddress sql.NullString
		paymentMethod   sql.NullString
		transactionID   sql.NullString
		transactionDate sql.NullString
	)
	if err := scanner.Scan(
		&ord.ID,
		&ord.UserID,
		&ord.TotalPrice,
		&ord.Status,
		&ord.OrderDate,
		&deliveryAddress,
		&ord.PaymentStatus,
		&paymentMethod,
		&transactionID,
		&transactionDate,
	); err != nil {
		return Order{}, err
	}
	if deliveryAddress.Valid {
		ord.DeliveryAddress = deliveryAddress.String
	}
	if paymentMethod.Valid {
		ord.PaymentMethod = paymentMethod.String
	}
	if transactionID.Valid {
		ord.TransactionID = transactionID.String
	}
	if transactionDate.Valid {
		ord.TransactionDate = transactionDate.String
	}
	return ord, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
