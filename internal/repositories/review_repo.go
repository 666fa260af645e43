package repositories

import (
	"errors"

	"badmintonpro/internal/models"
)

// ErrDuplicateReview is returned by Create when a review with the same
// idempotency key already exists.
var ErrDuplicateReview = errors.New("duplicate review submission")

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetAll() ([]models.Review, error)
	GetByID(id string) (*models.Review, error)
	GetByProduct(productID string) ([]models.Review, error)
	Create(review *models.Review) error
	Delete(id string) error
}
