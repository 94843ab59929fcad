package order

import (
	"log"

	"github.com/shopspring/decimal"
)

// EventPublisher is notified after an order has been committed. Implementations
// must not affect the outcome of the placement.
type EventPublisher interface {
	PublishOrderCreated(o Order) error
}

type Service struct {
	repo   Repository
	events EventPublisher
}

// NewService builds the order service. events may be nil when no broker is
// configured.
func NewService(repo Repository, events EventPublisher) *Service {
	return &Service{repo: repo, events: events}
}

// PlaceOrder computes the total from the submitted lines and hands the whole
// checkout to the repository as one unit of work. The total is the sum of
// line subtotals rounded to two decimal places.
func (s *Service) PlaceOrder(userID int, shippingAddress string, lines []Line) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	total = total.Round(2)

	o, err := s.repo.PlaceOrder(userID, shippingAddress, total, lines)
	if err != nil {
		return Order{}, err
	}

	if s.events != nil {
		if err := s.events.PublishOrderCreated(o); err != nil {
			log.Printf("order %d: publish OrderCreated: %v", o.ID, err)
		}
	}
	return o, nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) GetByID(userID, orderID int) (Order, error) {
	return s.repo.GetByID(userID, orderID)
}
