package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
	"badmintonpro/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Checkout pricing rules.
const (
	FreeShippingThreshold = 150.00
	FlatShippingFee       = 15.00
	TaxRate               = 0.08
)

// Publisher is the slice of the message-queue client the order pipeline
// needs. A nil publisher disables event publication.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// Totals is the checkout price breakdown.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices a cart with decimal arithmetic. Shipping is free at
// or above the threshold, otherwise the flat fee applies; tax is rounded
// to the cent before being added.
func ComputeTotals(items []models.CartItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(2)

	shipping := decimal.NewFromFloat(FlatShippingFee)
	if subtotal.GreaterThanOrEqual(decimal.NewFromFloat(FreeShippingThreshold)) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(decimal.NewFromFloat(TaxRate)).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	sub, _ := subtotal.Float64()
	ship, _ := shipping.Float64()
	tx, _ := tax.Float64()
	tot, _ := total.Float64()
	return Totals{Subtotal: sub, Shipping: ship, Tax: tx, Total: tot}
}

// GenerateOrderNumber synthesizes a human-readable order id from a
// timestamp-derived token plus a short random suffix.
func GenerateOrderNumber() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return "#ORD-" + timestamp + string(suffix)
}

// FormatOrderDate renders a creation time the way order lists display it.
func FormatOrderDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// OrderService runs the checkout pipeline and serves order queries.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   Publisher
	validate    *validator.Validate
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		validate:    validator.New(),
	}
}

// Checkout submits the cart as an order. Guards: the cart must be
// non-empty and the shipping address complete. Cart items are snapshotted
// into the order so later product edits cannot rewrite history. On success
// the cart is cleared; on failure it is left untouched so the shopper can
// resubmit.
func (s *OrderService) Checkout(cart *store.CartStore, address models.ShippingAddress, userID string) (*models.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	if err := s.validate.Struct(address); err != nil {
		return nil, fmt.Errorf("shipping address is incomplete: %w", err)
	}

	totals := ComputeTotals(items)

	order := &models.Order{
		OrderNumber:     GenerateOrderNumber(),
		UserID:          userID,
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          models.StatusProcessing,
		ShippingAddress: datatypes.NewJSONType(address),
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    item.ID,
			ProductName:  item.Name,
			ProductImage: item.Image,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	cart.ClearCart()
	s.publishEvent("order.created", map[string]interface{}{
		"orderNumber": order.OrderNumber,
		"userID":      order.UserID,
		"status":      order.Status,
		"total":       order.Total,
	})

	return order, nil
}

// GetOrders lists the orders for a user, or every order when userID is
// empty, as display summaries.
func (s *OrderService) GetOrders(userID string) ([]models.OrderSummary, error) {
	var (
		orders []models.Order
		err    error
	)
	if userID == "" {
		orders, err = s.orderRepo.GetAll()
	} else {
		orders, err = s.orderRepo.GetByUser(userID)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, models.OrderSummary{
			OrderNumber: o.OrderNumber,
			Date:        FormatOrderDate(o.CreatedAt),
			Total:       o.Total,
			Status:      o.Status,
		})
	}
	return summaries, nil
}

// GetOrderByNumber retrieves an order, including its shipping address and
// snapshotted items, by its human-readable order number.
func (s *OrderService) GetOrderByNumber(orderNumber string) (*models.Order, error) {
	return s.orderRepo.GetByNumber(orderNumber)
}

func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
