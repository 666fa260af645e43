package repositories

import (
	"fmt"
	"sort"
	"sync"

	"badmintonpro/internal/models"

	"github.com/google/uuid"
)

// MemoryImageRepository is the in-memory implementation of ImageRepository
// for demo mode.
type MemoryImageRepository struct {
	images []models.ProductImage
	mu     sync.RWMutex
}

// NewMemoryImageRepository creates a repository seeded with the given
// gallery images.
func NewMemoryImageRepository(seed []models.ProductImage) *MemoryImageRepository {
	r := &MemoryImageRepository{}
	r.images = append(r.images, seed...)
	return r
}

// GetByProduct returns a product's gallery in display order.
func (r *MemoryImageRepository) GetByProduct(productID string) ([]models.ProductImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.ProductImage
	for _, img := range r.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

// GetByID returns a gallery image by its ID.
func (r *MemoryImageRepository) GetByID(id string) (*models.ProductImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.images {
		if r.images[i].ID == id {
			img := r.images[i]
			return &img, nil
		}
	}
	return nil, fmt.Errorf("image with ID %s not found", id)
}

// Create adds a gallery image.
func (r *MemoryImageRepository) Create(image *models.ProductImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	r.images = append(r.images, *image)
	return nil
}

// Update modifies an existing gallery image.
func (r *MemoryImageRepository) Update(image *models.ProductImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.images {
		if r.images[i].ID == image.ID {
			r.images[i] = *image
			return nil
		}
	}
	return fmt.Errorf("image with ID %s not found for update", image.ID)
}

// Delete removes a gallery image by its ID.
func (r *MemoryImageRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.images {
		if r.images[i].ID == id {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("image with ID %s not found for deletion", id)
}

// UnsetPrimary clears the primary flag on every image of a product.
func (r *MemoryImageRepository) UnsetPrimary(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.images {
		if r.images[i].ProductID == productID {
			r.images[i].IsPrimary = false
		}
	}
	return nil
}

// SetDisplayOrder sets the display order of a single image.
func (r *MemoryImageRepository) SetDisplayOrder(id string, order int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.images {
		if r.images[i].ID == id {
			r.images[i].DisplayOrder = order
			return nil
		}
	}
	return fmt.Errorf("image with ID %s not found for reorder", id)
}

// MaxDisplayOrder returns the highest display order in a product's gallery,
// or -1 when the gallery is empty.
func (r *MemoryImageRepository) MaxDisplayOrder(productID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	max := -1
	for _, img := range r.images {
		if img.ProductID == productID && img.DisplayOrder > max {
			max = img.DisplayOrder
		}
	}
	return max, nil
}
