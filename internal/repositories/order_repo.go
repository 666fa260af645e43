package repositories

import (
	"badmintonpro/internal/models"
)

// OrderRepository defines the interface for order data access. Create
// writes the order row plus its snapshotted item rows. Orders are never
// deleted; after creation only their status changes.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetByNumber(orderNumber string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(orderNumber, status string) error
}
