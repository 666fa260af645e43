package repositories

import (
	"fmt"
	"sync"
	"time"

	"badmintonpro/internal/models"

	"github.com/google/uuid"
)

// MemoryCartRepository is the in-memory implementation of CartRepository
// for demo mode.
type MemoryCartRepository struct {
	entries map[string][]models.CartEntry // keyed by user id
	mu      sync.RWMutex
}

// NewMemoryCartRepository creates an empty in-memory cart repository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		entries: make(map[string][]models.CartEntry),
	}
}

// GetByUser returns a user's cart rows.
func (r *MemoryCartRepository) GetByUser(userID string) ([]models.CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.CartEntry, len(r.entries[userID]))
	copy(out, r.entries[userID])
	return out, nil
}

// Upsert adds the quantity to an existing row or inserts a new one.
func (r *MemoryCartRepository) Upsert(userID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.entries[userID]
	for i := range rows {
		if rows[i].ProductID == productID {
			rows[i].Quantity += quantity
			rows[i].UpdatedAt = time.Now()
			return nil
		}
	}
	r.entries[userID] = append(rows, models.CartEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	return nil
}

// UpdateQuantity replaces the quantity of a cart row.
func (r *MemoryCartRepository) UpdateQuantity(userID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.entries[userID]
	for i := range rows {
		if rows[i].ProductID == productID {
			rows[i].Quantity = quantity
			rows[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("cart entry for product %s not found", productID)
}

// Remove deletes a cart row.
func (r *MemoryCartRepository) Remove(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.entries[userID]
	for i := range rows {
		if rows[i].ProductID == productID {
			r.entries[userID] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear deletes every cart row of a user.
func (r *MemoryCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, userID)
	return nil
}

// MemoryWishlistRepository is the in-memory implementation of
// WishlistRepository for demo mode.
type MemoryWishlistRepository struct {
	entries map[string][]models.WishlistEntry
	mu      sync.RWMutex
}

// NewMemoryWishlistRepository creates an empty in-memory wishlist
// repository.
func NewMemoryWishlistRepository() *MemoryWishlistRepository {
	return &MemoryWishlistRepository{
		entries: make(map[string][]models.WishlistEntry),
	}
}

// GetByUser returns a user's wishlist rows.
func (r *MemoryWishlistRepository) GetByUser(userID string) ([]models.WishlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.WishlistEntry, len(r.entries[userID]))
	copy(out, r.entries[userID])
	return out, nil
}

// Add inserts a wishlist row if one does not already exist.
func (r *MemoryWishlistRepository) Add(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries[userID] {
		if e.ProductID == productID {
			return nil
		}
	}
	r.entries[userID] = append(r.entries[userID], models.WishlistEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	})
	return nil
}

// Remove deletes a wishlist row.
func (r *MemoryWishlistRepository) Remove(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.entries[userID]
	for i := range rows {
		if rows[i].ProductID == productID {
			r.entries[userID] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// Has reports whether a product is on the user's wishlist.
func (r *MemoryWishlistRepository) Has(userID, productID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries[userID] {
		if e.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
