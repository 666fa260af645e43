package models

import "time"

// CartItem pairs a product with a positive quantity. It lives in the
// session cart store and, for authenticated users, is mirrored into the
// carts table.
type CartItem struct {
	Product
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartEntry is the persisted cart row for an authenticated user. At most
// one row exists per (user, product) pair.
type CartEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_cart_user_product"`
	ProductID string    `json:"product_id" gorm:"column:product_id;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" validate:"min=1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WishlistEntry is the persisted wishlist row for an authenticated user.
type WishlistEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_wishlist_user_product"`
	ProductID string    `json:"product_id" gorm:"column:product_id;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `json:"created_at"`
}
