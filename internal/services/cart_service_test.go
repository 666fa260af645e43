package services_test

import (
	"testing"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
	"badmintonpro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService() *services.CartService {
	productRepo := repositories.NewMemoryProductRepository([]models.Product{
		{ID: "1", Name: "Astrox 99 Pro", Price: 219.00, Category: models.CategoryRackets},
		{ID: "11", Name: "Pro Grip Tape (Blue)", Price: 8.50, Category: models.CategoryAccessories},
	})
	return services.NewCartService(
		repositories.NewMemoryCartRepository(),
		repositories.NewMemoryWishlistRepository(),
		productRepo,
	)
}

func TestCartService_AddMergesQuantities(t *testing.T) {
	service := newCartService()

	require.NoError(t, service.AddToCart("u-1", "1", 1))
	require.NoError(t, service.AddToCart("u-1", "1", 2))

	items, err := service.GetCart("u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "Astrox 99 Pro", items[0].Name)
}

func TestCartService_AddUnknownProductFails(t *testing.T) {
	service := newCartService()
	assert.Error(t, service.AddToCart("u-1", "no-such-id", 1))
}

func TestCartService_UpdateToZeroRemovesLine(t *testing.T) {
	service := newCartService()
	require.NoError(t, service.AddToCart("u-1", "1", 2))

	require.NoError(t, service.UpdateQuantity("u-1", "1", 0))

	items, err := service.GetCart("u-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	service := newCartService()
	require.NoError(t, service.AddToCart("u-1", "1", 1))
	require.NoError(t, service.AddToCart("u-2", "11", 5))

	items, err := service.GetCart("u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)

	require.NoError(t, service.ClearCart("u-2"))
	items, err = service.GetCart("u-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_MergeLocalCartAddsQuantities(t *testing.T) {
	service := newCartService()
	require.NoError(t, service.AddToCart("u-1", "1", 1))

	local := []models.CartItem{
		{Product: models.Product{ID: "1"}, Quantity: 2},
		{Product: models.Product{ID: "11"}, Quantity: 1},
	}
	require.NoError(t, service.MergeLocalCart("u-1", local))

	items, err := service.GetCart("u-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		if item.ID == "1" {
			assert.Equal(t, 3, item.Quantity)
		}
	}
}

func TestCartService_WishlistToggle(t *testing.T) {
	service := newCartService()

	on, err := service.ToggleWishlist("u-1", "1")
	require.NoError(t, err)
	assert.True(t, on)

	products, err := service.GetWishlist("u-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Astrox 99 Pro", products[0].Name)

	off, err := service.ToggleWishlist("u-1", "1")
	require.NoError(t, err)
	assert.False(t, off)

	products, err = service.GetWishlist("u-1")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCartService_MergeLocalWishlistSkipsDuplicates(t *testing.T) {
	service := newCartService()

	_, err := service.ToggleWishlist("u-1", "1")
	require.NoError(t, err)

	require.NoError(t, service.MergeLocalWishlist("u-1", []string{"1", "11"}))

	products, err := service.GetWishlist("u-1")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
