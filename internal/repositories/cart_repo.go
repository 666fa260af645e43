package repositories

import (
	"badmintonpro/internal/models"
)

// CartRepository persists the cart of an authenticated user. Upsert adds
// the quantity to an existing (user, product) row or inserts a new one,
// which is also the merge rule used when a local session cart is synced in
// at login.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartEntry, error)
	Upsert(userID, productID string, quantity int) error
	UpdateQuantity(userID, productID string, quantity int) error
	Remove(userID, productID string) error
	Clear(userID string) error
}

// WishlistRepository persists the wishlist of an authenticated user.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistEntry, error)
	Add(userID, productID string) error
	Remove(userID, productID string) error
	Has(userID, productID string) (bool, error)
}
