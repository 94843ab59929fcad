package cart

import "errors"

var ErrNotFound = errors.New("cart item not found")

type Repository interface {
	ListByUser(userID int) ([]Item, error)
	// Add reports, besides the resulting row, whether it was freshly
	// inserted rather than merged into an existing one.
	Add(userID, productID, quantity int) (Row, bool, error)
	UpdateQuantity(userID, productID, quantity int) (Row, error)
	Remove(userID, productID int) (Row, error)
	Clear(userID int) error
}
