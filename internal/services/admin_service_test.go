package services_test

import (
	"testing"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
	"badmintonpro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDemoAdminService() (*services.AdminService, repositories.ProductRepository) {
	productRepo := repositories.NewMemoryProductRepository([]models.Product{
		{ID: "1", Name: "Astrox 99 Pro", Brand: "Yonex", Price: 219.00, Category: models.CategoryRackets, Stock: 15, Rating: 4.8, Reviews: 120},
	})
	orderRepo := repositories.NewMemoryOrderRepository(nil)
	reviewRepo := repositories.NewMemoryReviewRepository(nil)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	return services.NewAdminService(productRepo, orderRepo, reviewService, nil), productRepo
}

func TestAdminService_CreateProductStartsUnrated(t *testing.T) {
	admin, _ := newDemoAdminService()

	product, err := admin.CreateProduct(services.CreateProductInput{
		Name:     "Nanoflare 1000 Z",
		Brand:    "Yonex",
		Price:    240.00,
		Category: models.CategoryRackets,
		Stock:    8,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Nanoflare 1000 Z", product.Name)
	assert.Zero(t, product.Rating)
	assert.Zero(t, product.Reviews)

	all, err := admin.ListProducts()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAdminService_CreateProductRejectsBadCategory(t *testing.T) {
	admin, _ := newDemoAdminService()

	_, err := admin.CreateProduct(services.CreateProductInput{
		Name:     "Mystery Item",
		Brand:    "Acme",
		Category: "Gadgets",
	})
	assert.Error(t, err)
}

func TestAdminService_UpdateProductIsPartial(t *testing.T) {
	admin, repo := newDemoAdminService()

	newPrice := 199.00
	product, err := admin.UpdateProduct("1", services.UpdateProductInput{Price: &newPrice})

	assert.NoError(t, err)
	assert.InDelta(t, 199.00, product.Price, 0.0001)
	// Untouched fields keep their stored values
	assert.Equal(t, "Astrox 99 Pro", product.Name)
	assert.Equal(t, 15, product.Stock)

	stored, err := repo.GetByID("1")
	assert.NoError(t, err)
	assert.InDelta(t, 199.00, stored.Price, 0.0001)
}

func TestAdminService_UpdateStockRejectsNegative(t *testing.T) {
	admin, _ := newDemoAdminService()

	_, err := admin.UpdateStock("1", -3)
	assert.Error(t, err)

	product, err := admin.UpdateStock("1", 0)
	assert.NoError(t, err)
	assert.Zero(t, product.Stock)
}

func TestAdminService_DeleteProduct(t *testing.T) {
	admin, repo := newDemoAdminService()

	assert.NoError(t, admin.DeleteProduct("1"))

	_, err := repo.GetByID("1")
	assert.Error(t, err)
}

func TestAdminService_UpdateOrderStatusValidatesStatus(t *testing.T) {
	productRepo := repositories.NewMemoryProductRepository(nil)
	orderRepo := repositories.NewMemoryOrderRepository([]models.Order{
		{ID: "o-1", OrderNumber: "#ORD-4023", Status: models.StatusProcessing, Total: 89.00},
	})
	reviewService := services.NewReviewService(repositories.NewMemoryReviewRepository(nil), productRepo)
	admin := services.NewAdminService(productRepo, orderRepo, reviewService, nil)

	_, err := admin.UpdateOrderStatus("#ORD-4023", "Lost")
	assert.Error(t, err)

	order, err := admin.UpdateOrderStatus("#ORD-4023", models.StatusShipped)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusShipped, order.Status)
}

func TestAdminService_UpdateOrderStatusPublishesEvent(t *testing.T) {
	productRepo := repositories.NewMemoryProductRepository(nil)
	orderRepo := repositories.NewMemoryOrderRepository([]models.Order{
		{ID: "o-1", OrderNumber: "#ORD-4023", Status: models.StatusProcessing},
	})
	reviewService := services.NewReviewService(repositories.NewMemoryReviewRepository(nil), productRepo)
	mockPub := new(MockPublisher)
	admin := services.NewAdminService(productRepo, orderRepo, reviewService, mockPub)

	mockPub.On("Publish", "order", "order.status_updated", mock.Anything).Return(nil).Once()

	_, err := admin.UpdateOrderStatus("#ORD-4023", models.StatusDelivered)
	assert.NoError(t, err)
	mockPub.AssertExpectations(t)
}

func TestAdminService_ListReviewsAnnotatesProductNames(t *testing.T) {
	productRepo := repositories.NewMemoryProductRepository([]models.Product{
		{ID: "1", Name: "Astrox 99 Pro", Brand: "Yonex", Category: models.CategoryRackets},
	})
	reviewRepo := repositories.NewMemoryReviewRepository([]models.Review{
		{ID: "r-1", ProductID: "1", UserName: "John D.", Rating: 5, Text: "Great"},
	})
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	admin := services.NewAdminService(productRepo, repositories.NewMemoryOrderRepository(nil), reviewService, nil)

	reviews, err := admin.ListReviews()

	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, "Astrox 99 Pro", reviews[0].ProductName)
}
