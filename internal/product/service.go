package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	normalized, err := normalizePrice(p.Price)
	if err != nil {
		return Product{}, err
	}
	p.Price = normalized
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	normalized, err := normalizePrice(p.Price)
	if err != nil {
		return Product{}, err
	}
	p.Price = normalized
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) (Product, error) {
	return s.repo.Delete(id)
}

// normalizePrice parses the client-supplied price and renders it with two
// decimal places, rejecting negatives and garbage.
func normalizePrice(raw string) (string, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return "", ErrInvalidPrice
	}
	return d.Round(2).StringFixed(2), nil
}
