package cart

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(userID int) ([]Item, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) Add(userID, productID, quantity int) (Row, bool, error) {
	if productID <= 0 || quantity <= 0 {
		return Row{}, false, ErrInvalidQuantity
	}
	return s.repo.Add(userID, productID, quantity)
}

func (s *Service) UpdateQuantity(userID, productID, quantity int) (Row, error) {
	if quantity < 1 {
		return Row{}, ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(userID, productID, quantity)
}

func (s *Service) Remove(userID, productID int) (Row, error) {
	return s.repo.Remove(userID, productID)
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}
