package admin

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) DashboardStats() (DashboardStats, error) {
	return s.repo.DashboardStats()
}

func (s *Service) ListOrders() ([]OrderSummary, error) {
	return s.repo.ListOrders()
}

func (s *Service) UpdateOrderStatus(orderID int, status string) (OrderSummary, error) {
	switch status {
	case "pending", "completed", "cancelled":
	default:
		return OrderSummary{}, ErrInvalidStatus
	}
	return s.repo.UpdateOrderStatus(orderID, status)
}

func (s *Service) ListUsers() ([]UserSummary, error) {
	return s.repo.ListUsers()
}
