package services_test

import (
	"fmt"
	"strings"
	"testing"

	"badmintonpro/internal/models"
	"badmintonpro/internal/services"
	"badmintonpro/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(orderNumber string) (*models.Order, error) {
	args := m.Called(orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(orderNumber, status string) error {
	args := m.Called(orderNumber, status)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FirstName: "Lee",
		LastName:  "Chong",
		Email:     "lee@example.com",
		Address:   "1 Stadium Way",
		City:      "Kuala Lumpur",
		State:     "KL",
		ZipCode:   "50000",
		Country:   "Malaysia",
	}
}

func TestComputeTotals_TaxAndFreeShipping(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{ID: "1", Price: 219.00}, Quantity: 1},
		{Product: models.Product{ID: "11", Price: 8.50}, Quantity: 2},
	}

	totals := services.ComputeTotals(items)

	assert.InDelta(t, 236.00, totals.Subtotal, 0.0001)
	assert.InDelta(t, 0.00, totals.Shipping, 0.0001)
	assert.InDelta(t, 18.88, totals.Tax, 0.0001)
	assert.InDelta(t, 254.88, totals.Total, 0.0001)
}

func TestComputeTotals_FreeShippingAtExactThreshold(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{ID: "3", Price: 150.00}, Quantity: 1},
	}
	totals := services.ComputeTotals(items)
	assert.InDelta(t, 0.00, totals.Shipping, 0.0001)

	items[0].Price = 149.99
	totals = services.ComputeTotals(items)
	assert.InDelta(t, services.FlatShippingFee, totals.Shipping, 0.0001)
}

func TestOrderService_CheckoutRejectsEmptyCart(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	cart := store.NewCartStore()
	order, err := service.Checkout(cart, validAddress(), "user-1")

	assert.Nil(t, order)
	assert.ErrorContains(t, err, "cart is empty")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CheckoutRejectsIncompleteAddress(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	cart := store.NewCartStore()
	cart.AddToCart(models.Product{ID: "1", Name: "Astrox 99 Pro", Price: 219.00}, 1)

	address := validAddress()
	address.City = ""

	order, err := service.Checkout(cart, address, "user-1")

	assert.Nil(t, order)
	assert.ErrorContains(t, err, "shipping address is incomplete")
	assert.Len(t, cart.Items(), 1, "cart must survive a rejected checkout")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CheckoutSnapshotsItemsAndClearsCart(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, nil, mockPub)

	cart := store.NewCartStore()
	cart.AddToCart(models.Product{ID: "1", Name: "Astrox 99 Pro", Price: 219.00, Image: "a.jpg"}, 1)
	cart.AddToCart(models.Product{ID: "11", Name: "Pro Grip Tape (Blue)", Price: 8.50}, 2)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPub.On("Publish", "order", "order.created", mock.Anything).Return(nil).Once()

	order, err := service.Checkout(cart, validAddress(), "user-1")

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "#ORD-"))
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, "user-1", order.UserID)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Astrox 99 Pro", order.Items[0].ProductName)
	assert.InDelta(t, 254.88, order.Total, 0.0001)
	assert.Empty(t, cart.Items(), "cart must be cleared after a successful checkout")

	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderService_CheckoutFailureLeavesCartUntouched(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	cart := store.NewCartStore()
	cart.AddToCart(models.Product{ID: "1", Name: "Astrox 99 Pro", Price: 219.00}, 1)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("connection refused")).Once()

	order, err := service.Checkout(cart, validAddress(), "user-1")

	assert.Nil(t, order)
	assert.Error(t, err)
	assert.Len(t, cart.Items(), 1, "cart must survive a failed checkout")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrdersFormatsSummaries(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, nil)

	orders := []models.Order{
		{OrderNumber: "#ORD-4023", Total: 89.00, Status: models.StatusShipped},
	}
	mockRepo.On("GetByUser", "user-1").Return(orders, nil).Once()

	summaries, err := service.GetOrders("user-1")

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "#ORD-4023", summaries[0].OrderNumber)
	assert.Equal(t, models.StatusShipped, summaries[0].Status)
	mockRepo.AssertExpectations(t)
}
