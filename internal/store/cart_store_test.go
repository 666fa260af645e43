package store_test

import (
	"testing"

	"badmintonpro/internal/models"
	"badmintonpro/internal/store"

	"github.com/stretchr/testify/assert"
)

func racket() models.Product {
	return models.Product{ID: "1", Name: "Astrox 99 Pro", Price: 219.00, Category: models.CategoryRackets}
}

func grip() models.Product {
	return models.Product{ID: "11", Name: "Pro Grip Tape (Blue)", Price: 8.50, Category: models.CategoryAccessories}
}

func TestCartStore_AddMergesSameProduct(t *testing.T) {
	cart := store.NewCartStore()

	cart.AddToCart(racket(), 1)
	cart.AddToCart(racket(), 2)

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.Count())
}

func TestCartStore_AddClampsQuantityToOne(t *testing.T) {
	cart := store.NewCartStore()

	cart.AddToCart(racket(), 0)
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	cart.AddToCart(grip(), -5)
	items = cart.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 2, cart.Count())
}

func TestCartStore_UpdateQuantityIgnoresNonPositive(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(racket(), 2)

	cart.UpdateQuantity("1", 0)
	assert.Equal(t, 2, cart.Count())

	cart.UpdateQuantity("1", 5)
	assert.Equal(t, 5, cart.Count())
}

func TestCartStore_RemoveAbsentIsNoOp(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(racket(), 1)

	cart.RemoveFromCart("no-such-id")
	assert.Len(t, cart.Items(), 1)

	cart.RemoveFromCart("1")
	assert.Empty(t, cart.Items())
}

func TestCartStore_Subtotal(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(racket(), 1)
	cart.AddToCart(grip(), 2)

	// 219.00 + 2*8.50
	assert.InDelta(t, 236.00, cart.Subtotal(), 0.0001)
}

func TestCartStore_ToggleWishlistIsInvolution(t *testing.T) {
	cart := store.NewCartStore()

	cart.ToggleWishlist(racket())
	assert.True(t, cart.InWishlist("1"))
	assert.Len(t, cart.Wishlist(), 1)

	cart.ToggleWishlist(racket())
	assert.False(t, cart.InWishlist("1"))
	assert.Empty(t, cart.Wishlist())
}

func TestCartStore_ClearCartKeepsWishlist(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(racket(), 2)
	cart.ToggleWishlist(grip())

	cart.ClearCart()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.Count())
	assert.True(t, cart.InWishlist("11"))
}
