package product

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `id, name, description, price::text, stock_quantity, category, image_url, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }, p *Product) error {
	// description, category and image_url are nullable
	var desc, category, imageURL sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &desc, &p.Price, &p.StockQuantity,
		&category, &imageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	p.Description = desc.String
	p.Category = category.String
	p.ImageURL = imageURL.String
	return nil
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var p Product
	err := scanProduct(r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id), &p)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`
        INSERT INTO products (name, description, price, stock_quantity, category, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `, p.Name, p.Description, p.Price, p.StockQuantity, p.Category, p.ImageURL).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	err := scanProduct(r.db.QueryRow(`
        UPDATE products
        SET name = $1, description = $2, price = $3, stock_quantity = $4,
            category = $5, image_url = $6, updated_at = now()
        WHERE id = $7
        RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.StockQuantity, p.Category, p.ImageURL, id), &p)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Delete(id int) (Product, error) {
	var p Product
	err := scanProduct(r.db.QueryRow(`DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id), &p)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}
