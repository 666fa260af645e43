// Package store holds the session-scoped cart and wishlist state. Each
// browsing session owns one CartStore; tests construct independent
// instances. The store exposes exactly the mutations the storefront needs
// and nothing else.
package store

import (
	"sync"

	"badmintonpro/internal/models"

	"github.com/shopspring/decimal"
)

// CartStore is an ordered cart plus a wishlist. Order is insertion order;
// it matters for display, not for totals. At most one cart item exists per
// product id, and every item's quantity is at least 1.
type CartStore struct {
	items    []models.CartItem
	wishlist []models.Product
	mu       sync.Mutex
}

// NewCartStore creates an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddToCart merges the product into the cart: an existing item's quantity
// grows by quantity, otherwise a new item is appended. A quantity below 1
// is treated as 1. Stock is deliberately not enforced here.
func (s *CartStore) AddToCart(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity += quantity
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
}

// RemoveFromCart deletes the item with the given product id. Removing an
// absent product is a no-op.
func (s *CartStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity of the matching item. A quantity
// below 1 is a no-op; removal goes through RemoveFromCart.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// ToggleWishlist removes the product when present, appends it otherwise.
// Two calls in a row restore the prior state.
func (s *CartStore) ToggleWishlist(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == product.ID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return
		}
	}
	s.wishlist = append(s.wishlist, product)
}

// ClearCart empties the cart. The wishlist is untouched.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// Items returns a copy of the cart in display order.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Wishlist returns a copy of the wishlist in display order.
func (s *CartStore) Wishlist() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// InWishlist reports whether the product is on the wishlist.
func (s *CartStore) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == productID {
			return true
		}
	}
	return false
}

// Count returns the total quantity across all cart items.
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns Σ price×quantity, computed with decimal arithmetic so
// fractional prices sum to the cent.
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := decimal.Zero
	for _, item := range s.items {
		price := decimal.NewFromFloat(item.Price)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	f, _ := sum.Round(2).Float64()
	return f
}
