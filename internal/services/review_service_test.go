package services_test

import (
	"errors"
	"testing"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
	"badmintonpro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetAll() ([]models.Review, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByProduct(productID string) ([]models.Review, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestReviewService_CreateRecomputesRating(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	mockProducts.On("GetByID", "1").Return(&models.Product{ID: "1", Name: "Astrox 99 Pro"}, nil).Once()
	mockReviews.On("Create", mock.AnythingOfType("*models.Review")).Return(nil).Once()
	mockReviews.On("GetByProduct", "1").Return([]models.Review{
		{ID: "r-1", ProductID: "1", Rating: 5},
		{ID: "r-2", ProductID: "1", Rating: 4},
	}, nil).Once()
	// (5+4)/2 rounds to 4.5
	mockProducts.On("UpdateRating", "1", 4.5, 2).Return(nil).Once()

	review, err := service.Create("1", services.ReviewInput{
		UserName: "John D.",
		Rating:   5,
		Text:     "Incredible power on smashes.",
	})

	assert.NoError(t, err)
	assert.NotNil(t, review)
	assert.False(t, review.Verified, "new reviews start as unverified purchases")
	assert.NotEmpty(t, review.AvatarColor)
	mockReviews.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestReviewService_NewReviewStartsUnverified(t *testing.T) {
	reviewRepo := repositories.NewMemoryReviewRepository(nil)
	productRepo := repositories.NewMemoryProductRepository([]models.Product{{ID: "1", Name: "Astrox 99 Pro"}})
	service := services.NewReviewService(reviewRepo, productRepo)

	review, err := service.Create("1", services.ReviewInput{
		UserName: "John D.",
		Rating:   5,
		Text:     "Incredible power on smashes.",
	})

	assert.NoError(t, err)
	assert.False(t, review.Verified)

	stored, err := reviewRepo.GetByProduct("1")
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.False(t, stored[0].Verified)
}

func TestReviewService_CreateRejectsUnknownProduct(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	mockProducts.On("GetByID", "999").Return(nil, errors.New("product with ID 999 not found")).Once()

	review, err := service.Create("999", services.ReviewInput{
		UserName: "John D.",
		Rating:   5,
		Text:     "Incredible power on smashes.",
	})

	assert.Nil(t, review)
	assert.ErrorContains(t, err, "not found")
	mockReviews.AssertNotCalled(t, "Create")
	mockProducts.AssertExpectations(t)
}

func TestReviewService_CreateRejectsDuplicate(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	mockProducts.On("GetByID", "1").Return(&models.Product{ID: "1"}, nil).Once()
	mockReviews.On("Create", mock.AnythingOfType("*models.Review")).
		Return(repositories.ErrDuplicateReview).Once()

	review, err := service.Create("1", services.ReviewInput{
		UserName: "John D.",
		Rating:   5,
		Text:     "Incredible power on smashes.",
	})

	assert.Nil(t, review)
	assert.ErrorIs(t, err, repositories.ErrDuplicateReview)
	mockProducts.AssertNotCalled(t, "UpdateRating")
}

func TestReviewService_CreateValidatesInput(t *testing.T) {
	service := services.NewReviewService(new(MockReviewRepository), new(MockProductRepository))

	_, err := service.Create("1", services.ReviewInput{UserName: "John D.", Rating: 6, Text: "x"})
	assert.Error(t, err)

	_, err = service.Create("1", services.ReviewInput{UserName: "", Rating: 5, Text: "x"})
	assert.Error(t, err)
}

func TestReviewService_DeleteLastReviewResetsRating(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewReviewService(mockReviews, mockProducts)

	mockReviews.On("GetByID", "r-1").Return(&models.Review{ID: "r-1", ProductID: "1", Rating: 5}, nil).Once()
	mockReviews.On("Delete", "r-1").Return(nil).Once()
	mockReviews.On("GetByProduct", "1").Return([]models.Review{}, nil).Once()
	mockProducts.On("UpdateRating", "1", 0.0, 0).Return(nil).Once()

	err := service.Delete("r-1")

	assert.NoError(t, err)
	mockReviews.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestReviewService_ListByProductUsesMemoryBackedData(t *testing.T) {
	reviewRepo := repositories.NewMemoryReviewRepository([]models.Review{
		{ID: "r-1", ProductID: "1", UserName: "John D.", Rating: 5, Text: "Great"},
	})
	service := services.NewReviewService(reviewRepo, new(MockProductRepository))

	reviews := service.ListByProduct("1")
	assert.Len(t, reviews, 1)
	assert.Equal(t, "John D.", reviews[0].UserName)

	// No reviews means an empty list, not demo data
	assert.Empty(t, service.ListByProduct("999"))
}
