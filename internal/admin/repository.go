package admin

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status")
)

type Repository interface {
	DashboardStats() (DashboardStats, error)
	ListOrders() ([]OrderSummary, error)
	UpdateOrderStatus(orderID int, status string) (OrderSummary, error)
	ListUsers() ([]UserSummary, error)
}
