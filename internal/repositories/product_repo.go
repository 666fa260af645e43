package repositories

import (
	"badmintonpro/internal/models"
)

// ProductRepository defines the interface for product data access. Two
// implementations exist: a GORM adapter backed by the configured database
// and an in-memory adapter seeded with fixture data for demo mode. The
// adapter is selected once at startup.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	GetOnSale() ([]models.Product, error)
	Search(query string) ([]models.Product, error)
	GetTrending(limit int) ([]models.Product, error)
	GetLowStock(threshold int) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	UpdateStock(id string, stock int) error
	UpdateRating(id string, rating float64, reviewCount int) error
	Delete(id string) error
}
