package repositories

import (
	"badmintonpro/internal/models"
)

// ImageRepository defines the interface for product gallery data access.
// Display order is contiguous per product; the unset/set pair keeps the
// one-primary-per-product invariant.
type ImageRepository interface {
	GetByProduct(productID string) ([]models.ProductImage, error)
	GetByID(id string) (*models.ProductImage, error)
	Create(image *models.ProductImage) error
	Update(image *models.ProductImage) error
	Delete(id string) error
	UnsetPrimary(productID string) error
	SetDisplayOrder(id string, order int) error
	MaxDisplayOrder(productID string) (int, error)
}
