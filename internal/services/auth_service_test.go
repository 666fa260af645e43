package services_test

import (
	"fmt"
	"testing"

	"badmintonpro/internal/models"
	"badmintonpro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newAuthService(repo *MockUserRepository) *services.AuthService {
	return services.NewAuthService(repo, "test_jwt_secret", "admin", "secret123")
}

func TestAuthService_RegisterUserHashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	user := &models.User{Email: "shopper@example.com", Name: "Shopper", Password: "hunter22"}

	mockRepo.On("GetByEmail", "shopper@example.com").Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(user)

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUserRejectsDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	existing := &models.User{ID: "u-1", Email: "shopper@example.com"}
	mockRepo.On("GetByEmail", "shopper@example.com").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Email: "shopper@example.com", Password: "hunter22"})

	assert.ErrorContains(t, err, "already registered")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_LoginUserIssuesValidToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	user := &models.User{ID: "u-1", Email: "shopper@example.com", Name: "Shopper", Password: string(hash)}

	mockRepo.On("GetByEmail", "shopper@example.com").Return(user, nil).Twice()

	token, loggedIn, err := service.LoginUser("shopper@example.com", "hunter22")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u-1", loggedIn.ID)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "shopper@example.com", claims["email"])
	_, hasRole := claims["role"]
	assert.False(t, hasRole, "shopper tokens must not carry the admin role")

	// Wrong password
	_, _, err = service.LoginUser("shopper@example.com", "wrong")
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestAuthService_LoginAdmin(t *testing.T) {
	service := newAuthService(new(MockUserRepository))

	token, err := service.LoginAdmin("admin", "secret123")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])

	_, err = service.LoginAdmin("admin", "wrong")
	assert.ErrorContains(t, err, "invalid credentials")

	_, err = service.LoginAdmin("root", "secret123")
	assert.Error(t, err)
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	service := newAuthService(new(MockUserRepository))

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret
	other := services.NewAuthService(new(MockUserRepository), "another_secret", "admin", "secret123")
	token, err := other.LoginAdmin("admin", "secret123")
	assert.NoError(t, err)
	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
