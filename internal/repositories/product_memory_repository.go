package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"badmintonpro/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is the in-memory implementation of
// ProductRepository backing demo mode. Mutations persist for the lifetime
// of the process only.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a repository seeded with the given
// products. Pass the fixture catalog for demo mode, or nil for an empty one.
func NewMemoryProductRepository(seed []models.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{}
	r.products = append(r.products, seed...)
	return r
}

// GetAll returns all products in insertion order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

// GetByCategory filters by category, case-insensitively.
func (r *MemoryProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetOnSale returns products with a sale percentage, biggest discount first.
func (r *MemoryProductRepository) GetOnSale() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if p.SalePercentage > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SalePercentage > out[j].SalePercentage
	})
	return out, nil
}

// Search matches name, brand or category case-insensitively.
func (r *MemoryProductRepository) Search(query string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetTrending orders by review count then rating, both descending.
func (r *MemoryProductRepository) GetTrending(limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Reviews != out[j].Reviews {
			return out[i].Reviews > out[j].Reviews
		}
		return out[i].Rating > out[j].Rating
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// GetLowStock returns products at or below the threshold, lowest first.
func (r *MemoryProductRepository) GetLowStock(threshold int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Product
	for _, p := range r.products {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stock < out[j].Stock
	})
	return out, nil
}

// Create adds a new product.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products = append(r.products, *product)
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for update", product.ID)
}

// UpdateStock sets the stock count for a product.
func (r *MemoryProductRepository) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Stock = stock
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for stock update", id)
}

// UpdateRating sets the aggregate rating and review count for a product.
func (r *MemoryProductRepository) UpdateRating(id string, rating float64, reviewCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Rating = rating
			r.products[i].Reviews = reviewCount
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for rating update", id)
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for deletion", id)
}
