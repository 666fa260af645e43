package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"badmintonpro/internal/models"

	"github.com/google/uuid"
)

// MemoryReviewRepository is the in-memory implementation of
// ReviewRepository for demo mode.
type MemoryReviewRepository struct {
	reviews []models.Review
	keys    map[string]bool
	mu      sync.RWMutex
}

// NewMemoryReviewRepository creates a repository seeded with the given
// reviews.
func NewMemoryReviewRepository(seed []models.Review) *MemoryReviewRepository {
	r := &MemoryReviewRepository{keys: make(map[string]bool)}
	for _, rev := range seed {
		r.reviews = append(r.reviews, rev)
		if rev.DedupKey != "" {
			r.keys[rev.DedupKey] = true
		}
	}
	return r
}

// GetAll returns all reviews, newest first.
func (r *MemoryReviewRepository) GetAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns a review by its ID.
func (r *MemoryReviewRepository) GetByID(id string) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			rev := r.reviews[i]
			return &rev, nil
		}
	}
	return nil, fmt.Errorf("review with ID %s not found", id)
}

// GetByProduct returns the reviews for a product, newest first.
func (r *MemoryReviewRepository) GetByProduct(productID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Create adds a review, rejecting a repeat submission of the same key.
func (r *MemoryReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.DedupKey != "" && r.keys[review.DedupKey] {
		return ErrDuplicateReview
	}
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	r.reviews = append(r.reviews, *review)
	if review.DedupKey != "" {
		r.keys[review.DedupKey] = true
	}
	return nil
}

// Delete removes a review by its ID.
func (r *MemoryReviewRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			delete(r.keys, r.reviews[i].DedupKey)
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("review with ID %s not found for deletion", id)
}
