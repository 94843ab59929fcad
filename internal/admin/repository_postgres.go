package admin

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderSummaryQuery = `
    SELECT o.id, o.user_id, o.total_amount::text, o.shipping_address, o.status, o.created_at,
           u.first_name, u.last_name, u.email
    FROM orders o
    JOIN users u ON o.user_id = u.id
`

func (r *PostgresRepository) DashboardStats() (DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		return DashboardStats{}, err
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&stats.TotalProducts); err != nil {
		return DashboardStats{}, err
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&stats.TotalOrders); err != nil {
		return DashboardStats{}, err
	}
	if err := r.db.QueryRow(`
        SELECT COALESCE(SUM(total_amount), 0)::text
        FROM orders WHERE status = 'completed'
    `).Scan(&stats.TotalRevenue); err != nil {
		return DashboardStats{}, err
	}
	if err := r.db.QueryRow(`
        SELECT COUNT(*) FROM orders WHERE status = 'pending'
    `).Scan(&stats.PendingOrders); err != nil {
		return DashboardStats{}, err
	}

	rows, err := r.db.Query(orderSummaryQuery + ` ORDER BY o.created_at DESC LIMIT 5`)
	if err != nil {
		return DashboardStats{}, err
	}
	defer rows.Close()

	stats.RecentOrders = make([]OrderSummary, 0, 5)
	for rows.Next() {
		var o OrderSummary
		if err := scanOrderSummary(rows, &o); err != nil {
			return DashboardStats{}, err
		}
		stats.RecentOrders = append(stats.RecentOrders, o)
	}
	return stats, rows.Err()
}

func (r *PostgresRepository) ListOrders() ([]OrderSummary, error) {
	rows, err := r.db.Query(orderSummaryQuery + ` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var o OrderSummary
		if err := scanOrderSummary(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) (OrderSummary, error) {
	var o OrderSummary
	var shipping sql.NullString
	err := r.db.QueryRow(`
        UPDATE orders SET status = $1 WHERE id = $2
        RETURNING id, user_id, total_amount::text, shipping_address, status, created_at
    `, status, orderID).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &shipping, &o.Status, &o.CreatedAt)
	o.ShippingAddress = shipping.String
	if err == sql.ErrNoRows {
		return OrderSummary{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderSummary{}, err
	}
	return o, nil
}

func (r *PostgresRepository) ListUsers() ([]UserSummary, error) {
	rows, err := r.db.Query(`
        SELECT id, email, first_name, last_name, is_admin, created_at,
               (SELECT COUNT(*) FROM orders WHERE user_id = users.id) AS order_count
        FROM users
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserSummary, 0)
	for rows.Next() {
		var u UserSummary
		var firstName, lastName sql.NullString
		if err := rows.Scan(&u.ID, &u.Email, &firstName, &lastName, &u.IsAdmin,
			&u.CreatedAt, &u.OrderCount); err != nil {
			return nil, err
		}
		u.FirstName = firstName.String
		u.LastName = lastName.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanOrderSummary(rows *sql.Rows, o *OrderSummary) error {
	// shipping_address and the buyer's names are nullable
	var shipping, firstName, lastName sql.NullString
	if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &shipping, &o.Status,
		&o.CreatedAt, &firstName, &lastName, &o.Email); err != nil {
		return err
	}
	o.ShippingAddress = shipping.String
	o.FirstName = firstName.String
	o.LastName = lastName.String
	return nil
}
