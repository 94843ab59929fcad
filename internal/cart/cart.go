package cart

import "time"

// Item is a cart row joined with live product attributes for display.
type Item struct {
	ID            int       `json:"id"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
	ProductID     int       `json:"product_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	StockQuantity int       `json:"stock_quantity"`
}

// Row is a bare cart_items row, returned by mutations.
type Row struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
