package repositories

import (
	"fmt"

	"badmintonpro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

// NewGORMImageRepository creates a new instance of GORMImageRepository.
func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{
		db: db,
	}
}

// GetByProduct retrieves a product's gallery in display order.
func (r *GORMImageRepository) GetByProduct(productID string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.Where("product_id = ?", productID).
		Order("display_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get images for product %s: %w", productID, err)
	}
	return images, nil
}

// GetByID retrieves a single gallery image by its ID.
func (r *GORMImageRepository) GetByID(id string) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("image with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get image by ID %s: %w", id, err)
	}
	return &image, nil
}

// Create inserts a gallery image.
func (r *GORMImageRepository) Create(image *models.ProductImage) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// Update saves an existing gallery image.
func (r *GORMImageRepository) Update(image *models.ProductImage) error {
	res := r.db.Save(image)
	if res.Error != nil {
		return fmt.Errorf("failed to update image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("image with ID %s not found for update", image.ID)
	}
	return nil
}

// Delete removes a gallery image by its ID.
func (r *GORMImageRepository) Delete(id string) error {
	res := r.db.Delete(&models.ProductImage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("image with ID %s not found for deletion", id)
	}
	return nil
}

// UnsetPrimary clears the primary flag on every image of a product.
func (r *GORMImageRepository) UnsetPrimary(productID string) error {
	err := r.db.Model(&models.ProductImage{}).
		Where("product_id = ?", productID).
		Update("is_primary", false).Error
	if err != nil {
		return fmt.Errorf("failed to unset primary images for product %s: %w", productID, err)
	}
	return nil
}

// SetDisplayOrder sets the display order of a single image.
func (r *GORMImageRepository) SetDisplayOrder(id string, order int) error {
	res := r.db.Model(&models.ProductImage{}).Where("id = ?", id).Update("display_order", order)
	if res.Error != nil {
		return fmt.Errorf("failed to set display order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("image with ID %s not found for reorder", id)
	}
	return nil
}

// MaxDisplayOrder returns the highest display order in a product's gallery,
// or -1 when the gallery is empty.
func (r *GORMImageRepository) MaxDisplayOrder(productID string) (int, error) {
	var images []models.ProductImage
	err := r.db.Where("product_id = ?", productID).
		Order("display_order DESC").
		Limit(1).
		Find(&images).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get max display order for product %s: %w", productID, err)
	}
	if len(images) == 0 {
		return -1, nil
	}
	return images[0].DisplayOrder, nil
}
