package repositories

import (
	"fmt"

	"badmintonpro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves a user's cart rows.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	if err := r.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return entries, nil
}

// Upsert adds the quantity to an existing row or inserts a new one.
func (r *GORMCartRepository) Upsert(userID, productID string, quantity int) error {
	var entry models.CartEntry
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&entry).Error
	switch {
	case err == nil:
		entry.Quantity += quantity
		if err := r.db.Save(&entry).Error; err != nil {
			return fmt.Errorf("failed to update cart entry: %w", err)
		}
		return nil
	case err == gorm.ErrRecordNotFound:
		entry = models.CartEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := r.db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create cart entry: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to look up cart entry: %w", err)
	}
}

// UpdateQuantity replaces the quantity of a cart row.
func (r *GORMCartRepository) UpdateQuantity(userID, productID string, quantity int) error {
	res := r.db.Model(&models.CartEntry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart quantity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart entry for product %s not found", productID)
	}
	return nil
}

// Remove deletes a cart row.
func (r *GORMCartRepository) Remove(userID, productID string) error {
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove cart entry: %w", err)
	}
	return nil
}

// Clear deletes every cart row of a user.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUser retrieves a user's wishlist rows.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := r.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return entries, nil
}

// Add inserts a wishlist row if one does not already exist.
func (r *GORMWishlistRepository) Add(userID, productID string) error {
	has, err := r.Has(userID, productID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	entry := models.WishlistEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to add wishlist entry: %w", err)
	}
	return nil
}

// Remove deletes a wishlist row.
func (r *GORMWishlistRepository) Remove(userID, productID string) error {
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}
	return nil
}

// Has reports whether a product is on the user's wishlist.
func (r *GORMWishlistRepository) Has(userID, productID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.WishlistEntry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check wishlist: %w", err)
	}
	return count > 0, nil
}
