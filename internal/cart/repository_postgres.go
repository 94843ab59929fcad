package cart

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const listQuery = `
    SELECT
        cart_items.id,
        cart_items.quantity,
        cart_items.created_at,
        products.id AS product_id,
        products.name,
        products.description,
        products.price::text,
        products.category,
        products.image_url,
        products.stock_quantity
    FROM cart_items
    JOIN products ON cart_items.product_id = products.id
    WHERE cart_items.user_id = $1
    ORDER BY cart_items.created_at DESC
`

func (r *PostgresRepository) ListByUser(userID int) ([]Item, error) {
	rows, err := r.db.Query(listQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var it Item
		// description, category and image_url are nullable
		var desc, category, imageURL sql.NullString
		if err := rows.Scan(&it.ID, &it.Quantity, &it.CreatedAt, &it.ProductID, &it.Name,
			&desc, &it.Price, &category, &imageURL, &it.StockQuantity); err != nil {
			return nil, err
		}
		it.Description = desc.String
		it.Category = category.String
		it.ImageURL = imageURL.String
		items = append(items, it)
	}
	return items, rows.Err()
}

// Add inserts a cart row or merges the quantity into an existing one. The
// second return value reports whether a new row was created; xmax is zero only
// for freshly inserted tuples.
func (r *PostgresRepository) Add(userID, productID, quantity int) (Row, bool, error) {
	var row Row
	var created bool
	err := r.db.QueryRow(`
        INSERT INTO cart_items (user_id, product_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, product_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
        RETURNING id, user_id, product_id, quantity, created_at, (xmax = 0) AS inserted
    `, userID, productID, quantity).
		Scan(&row.ID, &row.UserID, &row.ProductID, &row.Quantity, &row.CreatedAt, &created)
	if err != nil {
		return Row{}, false, err
	}
	return row, created, nil
}

func (r *PostgresRepository) UpdateQuantity(userID, productID, quantity int) (Row, error) {
	var row Row
	err := r.db.QueryRow(`
        UPDATE cart_items SET quantity = $1
        WHERE user_id = $2 AND product_id = $3
        RETURNING id, user_id, product_id, quantity, created_at
    `, quantity, userID, productID).
		Scan(&row.ID, &row.UserID, &row.ProductID, &row.Quantity, &row.CreatedAt)
	if err == sql.ErrNoRows {
		return Row{}, ErrNotFound
	}
	if err != nil {
		return Row{}, err
	}
	return row, nil
}

func (r *PostgresRepository) Remove(userID, productID int) (Row, error) {
	var row Row
	err := r.db.QueryRow(`
        DELETE FROM cart_items
        WHERE user_id = $1 AND product_id = $2
        RETURNING id, user_id, product_id, quantity, created_at
    `, userID, productID).
		Scan(&row.ID, &row.UserID, &row.ProductID, &row.Quantity, &row.CreatedAt)
	if err == sql.ErrNoRows {
		return Row{}, ErrNotFound
	}
	if err != nil {
		return Row{}, err
	}
	return row, nil
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
