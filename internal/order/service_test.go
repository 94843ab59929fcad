package order

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	placed     bool
	gotUserID  int
	gotAddress string
	gotTotal   decimal.Decimal
	gotLines   []Line
	returned   Order
	err        error
}

func (s *stubRepo) PlaceOrder(userID int, shippingAddress string, total decimal.Decimal, lines []Line) (Order, error) {
	s.placed = true
	s.gotUserID = userID
	s.gotAddress = shippingAddress
	s.gotTotal = total
	s.gotLines = lines
	if s.err != nil {
		return Order{}, s.err
	}
	return s.returned, nil
}

func (s *stubRepo) ListByUser(userID int) ([]Order, error) { return nil, nil }

func (s *stubRepo) GetByID(userID, orderID int) (Order, error) { return s.returned, s.err }

type stubPublisher struct {
	published []Order
	err       error
}

func (p *stubPublisher) PublishOrderCreated(o Order) error {
	p.published = append(p.published, o)
	return p.err
}

func line(productID int, name, price string, qty int) Line {
	return Line{ProductID: productID, Name: name, Price: decimal.RequireFromString(price), Quantity: qty}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil)

	_, err := svc.PlaceOrder(1, "somewhere", nil)

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, repo.placed, "repository must not be touched for an empty cart")
}

func TestPlaceOrder_TotalIsSumOfLineSubtotals(t *testing.T) {
	repo := &stubRepo{returned: Order{ID: 7, Status: StatusPending, TotalAmount: "25.50"}}
	svc := NewService(repo, nil)

	lines := []Line{
		line(1, "Product A", "10.00", 2),
		line(2, "Product B", "5.50", 1),
	}
	o, err := svc.PlaceOrder(42, "1 Main St", lines)

	require.NoError(t, err)
	assert.Equal(t, 7, o.ID)
	assert.Equal(t, "25.50", repo.gotTotal.StringFixed(2))
	assert.Equal(t, 42, repo.gotUserID)
	assert.Equal(t, "1 Main St", repo.gotAddress)
	assert.Len(t, repo.gotLines, 2)
}

func TestPlaceOrder_TotalRoundsToTwoDecimals(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil)

	_, err := svc.PlaceOrder(1, "x", []Line{line(1, "A", "0.333", 3)})

	require.NoError(t, err)
	assert.Equal(t, "1.00", repo.gotTotal.StringFixed(2))
}

func TestPlaceOrder_RepositoryErrorPropagates(t *testing.T) {
	stockErr := &InsufficientStockError{Product: "Product C"}
	repo := &stubRepo{err: stockErr}
	svc := NewService(repo, nil)

	_, err := svc.PlaceOrder(1, "x", []Line{line(3, "Product C", "20.00", 10)})

	var got *InsufficientStockError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "Product C", got.Product)
}

func TestPlaceOrder_PublishesOrderCreated(t *testing.T) {
	repo := &stubRepo{returned: Order{ID: 9, UserID: 1, TotalAmount: "10.00"}}
	pub := &stubPublisher{}
	svc := NewService(repo, pub)

	_, err := svc.PlaceOrder(1, "x", []Line{line(1, "A", "10.00", 1)})

	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	assert.Equal(t, 9, pub.published[0].ID)
}

func TestPlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	repo := &stubRepo{returned: Order{ID: 9}}
	pub := &stubPublisher{err: errors.New("broker down")}
	svc := NewService(repo, pub)

	o, err := svc.PlaceOrder(1, "x", []Line{line(1, "A", "10.00", 1)})

	require.NoError(t, err)
	assert.Equal(t, 9, o.ID)
}

func TestPlaceOrder_NoEventOnFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}
	pub := &stubPublisher{}
	svc := NewService(repo, pub)

	_, err := svc.PlaceOrder(1, "x", []Line{line(1, "A", "10.00", 1)})

	require.Error(t, err)
	assert.Empty(t, pub.published)
}
