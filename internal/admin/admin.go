package admin

import "time"

// OrderSummary is an order joined with its buyer, as shown on the dashboard
// and the admin order list.
type OrderSummary struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	TotalAmount     string    `json:"total_amount"`
	ShippingAddress string    `json:"shipping_address,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
}

// UserSummary is a user row with an aggregate order count.
type UserSummary struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
	OrderCount int       `json:"order_count"`
}

// DashboardStats aggregates the numbers shown on the admin landing page.
// TotalRevenue only counts completed orders.
type DashboardStats struct {
	TotalUsers    int            `json:"totalUsers"`
	TotalProducts int            `json:"totalProducts"`
	TotalOrders   int            `json:"totalOrders"`
	TotalRevenue  string         `json:"totalRevenue"`
	PendingOrders int            `json:"pendingOrders"`
	RecentOrders  []OrderSummary `json:"recentOrders"`
}
