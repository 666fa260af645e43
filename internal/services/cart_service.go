package services

import (
	"fmt"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
)

// CartService persists cart and wishlist state for authenticated users.
// Anonymous shoppers keep their cart in a session store; at login the
// session cart is merged into the persisted one.
type CartService struct {
	cartRepo     repositories.CartRepository
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetCart returns the user's cart joined with current product data.
// Entries whose product has since been removed from the catalog are
// skipped rather than surfaced as errors.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	entries, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]models.CartItem, 0, len(entries))
	for _, e := range entries {
		product, err := s.productRepo.GetByID(e.ProductID)
		if err != nil || product == nil {
			continue
		}
		items = append(items, models.CartItem{Product: *product, Quantity: e.Quantity})
	}
	return items, nil
}

// AddToCart adds quantity of a product to the user's cart, merging with
// any existing line for the same product.
func (s *CartService) AddToCart(userID, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if product, err := s.productRepo.GetByID(productID); err != nil || product == nil {
		return fmt.Errorf("product %s not found", productID)
	}
	return s.cartRepo.Upsert(userID, productID, quantity)
}

// UpdateQuantity sets a cart line to an absolute quantity. Zero or
// negative removes the line.
func (s *CartService) UpdateQuantity(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.cartRepo.Remove(userID, productID)
	}
	return s.cartRepo.UpdateQuantity(userID, productID, quantity)
}

// RemoveFromCart drops a product from the user's cart.
func (s *CartService) RemoveFromCart(userID, productID string) error {
	return s.cartRepo.Remove(userID, productID)
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) error {
	return s.cartRepo.Clear(userID)
}

// MergeLocalCart folds a session cart into the user's persisted cart,
// adding quantities line by line. Used once at login.
func (s *CartService) MergeLocalCart(userID string, items []models.CartItem) error {
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if err := s.cartRepo.Upsert(userID, item.ID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetWishlist returns the user's wishlist joined with current product
// data.
func (s *CartService) GetWishlist(userID string) ([]models.Product, error) {
	entries, err := s.wishlistRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		product, err := s.productRepo.GetByID(e.ProductID)
		if err != nil || product == nil {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

// ToggleWishlist adds the product when absent and removes it when
// present, reporting whether the product ended up wishlisted.
func (s *CartService) ToggleWishlist(userID, productID string) (bool, error) {
	has, err := s.wishlistRepo.Has(userID, productID)
	if err != nil {
		return false, err
	}
	if has {
		return false, s.wishlistRepo.Remove(userID, productID)
	}
	if product, err := s.productRepo.GetByID(productID); err != nil || product == nil {
		return false, fmt.Errorf("product %s not found", productID)
	}
	return true, s.wishlistRepo.Add(userID, productID)
}

// MergeLocalWishlist folds a session wishlist into the persisted one.
// Already-wishlisted products are left alone.
func (s *CartService) MergeLocalWishlist(userID string, productIDs []string) error {
	for _, id := range productIDs {
		has, err := s.wishlistRepo.Has(userID, id)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		if err := s.wishlistRepo.Add(userID, id); err != nil {
			return err
		}
	}
	return nil
}
