package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"badmintonpro/internal/models"

	"github.com/google/uuid"
)

// MemoryOrderRepository is the in-memory implementation of OrderRepository
// for demo mode. Orders created through it survive for the session, so the
// admin panel sees exactly what the shopper just checked out.
type MemoryOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a repository seeded with the given
// demo orders.
func NewMemoryOrderRepository(seed []models.Order) *MemoryOrderRepository {
	r := &MemoryOrderRepository{}
	r.orders = append(r.orders, seed...)
	return r
}

// GetAll returns all orders, newest first.
func (r *MemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByUser returns the orders placed by the given user, newest first.
func (r *MemoryOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByNumber returns an order by its order number.
func (r *MemoryOrderRepository) GetByNumber(orderNumber string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].OrderNumber == orderNumber {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %s not found", orderNumber)
}

// Create adds a new order.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders = append(r.orders, *order)
	return nil
}

// UpdateStatus updates the status of an order, addressed by order number.
func (r *MemoryOrderRepository) UpdateStatus(orderNumber, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].OrderNumber == orderNumber {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("order %s not found for status update", orderNumber)
}
