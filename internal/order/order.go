package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order mirrors a row in the orders table. TotalAmount carries the NUMERIC
// column as a fixed two-decimal string.
type Order struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	TotalAmount     string    `json:"total_amount"`
	ShippingAddress string    `json:"shipping_address"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	Items           []Item    `json:"items,omitempty"`
}

// Item is an order line, enriched with product attributes on reads.
type Item struct {
	ProductID   int    `json:"product_id"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Line is one cart line submitted for checkout. Price is the unit price
// captured at add-time; it is stored on the order line verbatim.
type Line struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal returns price x quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotFound  = errors.New("order not found")
)

// InsufficientStockError reports which product could not cover the requested
// quantity. The whole placement transaction rolls back when it is returned.
type InsufficientStockError struct {
	Product string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Product)
}
