package order

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `id, user_id, total_amount::text, shipping_address, status, created_at`

func scanOrder(row interface{ Scan(...any) error }, o *Order) error {
	// shipping_address is nullable
	var shipping sql.NullString
	if err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &shipping, &o.Status, &o.CreatedAt); err != nil {
		return err
	}
	o.ShippingAddress = shipping.String
	return nil
}

// PlaceOrder inserts the order and its lines, decrements stock per line and
// empties the user's cart, all inside one transaction. A post-decrement stock
// value below zero aborts with InsufficientStockError; the deferred rollback
// then reverts every change made so far.
func (r *PostgresRepository) PlaceOrder(userID int, shippingAddress string, total decimal.Decimal, lines []Line) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var o Order
	err = scanOrder(tx.QueryRow(`
        INSERT INTO orders (user_id, total_amount, shipping_address, status)
        VALUES ($1, $2, $3, 'pending')
        RETURNING `+orderColumns,
		userID, total.StringFixed(2), shippingAddress), &o)
	if err != nil {
		return Order{}, err
	}

	// Lines are processed strictly in list order so the first stock
	// violation aborts before any later line is touched.
	for _, line := range lines {
		if _, err := tx.Exec(`
            INSERT INTO order_items (order_id, product_id, quantity, price)
            VALUES ($1, $2, $3, $4)
        `, o.ID, line.ProductID, line.Quantity, line.Price.StringFixed(2)); err != nil {
			return Order{}, err
		}

		var remaining int
		err := tx.QueryRow(`
            UPDATE products
            SET stock_quantity = stock_quantity - $1
            WHERE id = $2
            RETURNING stock_quantity
        `, line.Quantity, line.ProductID).Scan(&remaining)
		if err == sql.ErrNoRows {
			return Order{}, &InsufficientStockError{Product: line.Name}
		}
		if err != nil {
			return Order{}, err
		}
		if remaining < 0 {
			return Order{}, &InsufficientStockError{Product: line.Name}
		}

		o.Items = append(o.Items, Item{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price.StringFixed(2),
			Name:      line.Name,
		})
	}

	// The entire cart is emptied, not just the purchased lines.
	if _, err := tx.Exec(`DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`
        SELECT `+orderColumns+`
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	ids := make([]int, 0)
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemsByOrder, err := r.listItems(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) GetByID(userID, orderID int) (Order, error) {
	var o Order
	err := scanOrder(r.db.QueryRow(`
        SELECT `+orderColumns+`
        FROM orders
        WHERE id = $1 AND user_id = $2
    `, orderID, userID), &o)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	itemsByOrder, err := r.listItems([]int{o.ID})
	if err != nil {
		return Order{}, err
	}
	o.Items = itemsByOrder[o.ID]
	return o, nil
}

// listItems batch-loads the lines for a set of orders in one query instead of
// one query per order.
func (r *PostgresRepository) listItems(orderIDs []int) (map[int][]Item, error) {
	out := make(map[int][]Item)
	if len(orderIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(`
        SELECT
            order_items.order_id,
            order_items.product_id,
            order_items.quantity,
            order_items.price::text,
            products.name,
            products.description,
            products.image_url
        FROM order_items
        JOIN products ON order_items.product_id = products.id
        WHERE order_items.order_id = ANY($1::int[])
    `, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int
		var it Item
		var desc, imageURL sql.NullString
		if err := rows.Scan(&orderID, &it.ProductID, &it.Quantity, &it.Price,
			&it.Name, &desc, &imageURL); err != nil {
			return nil, err
		}
		it.Description = desc.String
		it.ImageURL = imageURL.String
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}
