package order

import "github.com/shopspring/decimal"

type Repository interface {
	// PlaceOrder runs the whole checkout as one transaction: order row,
	// order lines, stock decrements, cart clearing. Any failure rolls
	// everything back.
	PlaceOrder(userID int, shippingAddress string, total decimal.Decimal, lines []Line) (Order, error)
	ListByUser(userID int) ([]Order, error)
	GetByID(userID, orderID int) (Order, error)
}
