package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"badmintonpro/internal/fixtures"
	"badmintonpro/internal/handlers"
	"badmintonpro/internal/middleware"
	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
	"badmintonpro/internal/services"
	"badmintonpro/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp builds the full API in demo mode: every repository is the
// in-memory adapter seeded with fixture data.
func setupApp() (*fiber.App, *services.AuthService) {
	productRepo := repositories.NewMemoryProductRepository(fixtures.Products)
	orderRepo := repositories.NewMemoryOrderRepository(fixtures.Orders)
	reviewRepo := repositories.NewMemoryReviewRepository(fixtures.Reviews)
	imageRepo := repositories.NewMemoryImageRepository(nil)
	cartRepo := repositories.NewMemoryCartRepository()
	wishlistRepo := repositories.NewMemoryWishlistRepository()
	userRepo := repositories.NewMemoryUserRepository()

	catalogService := services.NewCatalogService(productRepo, fixtures.Products)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	imageService := services.NewImageService(imageRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, nil)
	adminService := services.NewAdminService(productRepo, orderRepo, reviewService, nil)
	cartService := services.NewCartService(cartRepo, wishlistRepo, productRepo)
	authService := services.NewAuthService(userRepo, "test_jwt_secret", "admin", "secret123")
	assistantService := services.NewAssistantService(catalogService, nil)

	sessions := store.NewSessionManager()

	app := fiber.New()
	authRequired := middleware.AuthRequired(authService)
	adminRequired := middleware.AdminRequired(authService)
	optionalAuth := middleware.OptionalAuth(authService)

	apiV1 := app.Group("/api/v1")
	handlers.NewCatalogHandler(catalogService, reviewService, imageService).RegisterRoutes(apiV1)
	handlers.NewCartHandler(sessions, catalogService, cartService).RegisterRoutes(apiV1, authRequired)
	handlers.NewOrderHandler(orderService, sessions).RegisterRoutes(apiV1, optionalAuth, authRequired)
	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1, authRequired)
	handlers.NewAdminHandler(adminService, imageService).RegisterRoutes(apiV1, adminRequired)
	handlers.NewAssistantHandler(assistantService).RegisterRoutes(apiV1)

	return app, authService
}

func doJSON(app *fiber.App, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, _ := app.Test(req, -1)
	payload, _ := io.ReadAll(resp.Body)
	return resp, payload
}

func TestListProducts(t *testing.T) {
	app, _ := setupApp()

	resp, body := doJSON(app, http.MethodGet, "/api/v1/products", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, len(fixtures.Products))
}

func TestListProductsByCategory(t *testing.T) {
	app, _ := setupApp()

	resp, body := doJSON(app, http.MethodGet, "/api/v1/products?category=Rackets", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.Unmarshal(body, &products))
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, models.CategoryRackets, p.Category)
	}
}

func TestGetProductNotFound(t *testing.T) {
	app, _ := setupApp()

	resp, _ := doJSON(app, http.MethodGet, "/api/v1/products/no-such-id", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionCartAndCheckoutFlow(t *testing.T) {
	app, _ := setupApp()
	session := map[string]string{handlers.SessionHeader: "sess-1"}

	// Add a racket and two grips
	resp, _ := doJSON(app, http.MethodPost, "/api/v1/cart/items",
		map[string]interface{}{"productId": "1", "quantity": 1}, session)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(app, http.MethodPost, "/api/v1/cart/items",
		map[string]interface{}{"productId": "11", "quantity": 2}, session)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(app, http.MethodGet, "/api/v1/cart", nil, session)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cart struct {
		Count    int     `json:"count"`
		Subtotal float64 `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(body, &cart))
	assert.Equal(t, 3, cart.Count)
	assert.InDelta(t, 236.00, cart.Subtotal, 0.0001)

	// Guest checkout
	resp, body = doJSON(app, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"shippingAddress": map[string]string{
			"firstName": "Lee", "lastName": "Chong", "email": "lee@example.com",
			"address": "1 Stadium Way", "city": "Kuala Lumpur", "state": "KL",
			"zipCode": "50000", "country": "Malaysia",
		},
	}, session)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var order struct {
		ID     string  `json:"id"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Contains(t, order.ID, "#ORD-")
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.InDelta(t, 254.88, order.Total, 0.0001)

	// Cart is cleared after checkout
	resp, body = doJSON(app, http.MethodGet, "/api/v1/cart", nil, session)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &cart))
	assert.Zero(t, cart.Count)
}

func TestCheckoutRequiresCompleteAddress(t *testing.T) {
	app, _ := setupApp()
	session := map[string]string{handlers.SessionHeader: "sess-2"}

	doJSON(app, http.MethodPost, "/api/v1/cart/items",
		map[string]interface{}{"productId": "1", "quantity": 1}, session)

	resp, _ := doJSON(app, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"shippingAddress": map[string]string{"firstName": "Lee"},
	}, session)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The cart survived the rejected checkout
	resp, body := doJSON(app, http.MethodGet, "/api/v1/cart", nil, session)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cart struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &cart))
	assert.Equal(t, 1, cart.Count)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	app, _ := setupApp()
	session := map[string]string{handlers.SessionHeader: "sess-3"}

	resp, _ := doJSON(app, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"shippingAddress": map[string]string{
			"firstName": "Lee", "lastName": "Chong", "email": "lee@example.com",
			"address": "1 Stadium Way", "city": "Kuala Lumpur", "state": "KL",
			"zipCode": "50000", "country": "Malaysia",
		},
	}, session)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := setupApp()

	resp, _ := doJSON(app, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "shopper@example.com", "name": "Shopper", "password": "hunter22",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate email is rejected
	resp, _ = doJSON(app, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "shopper@example.com", "name": "Shopper", "password": "hunter22",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body := doJSON(app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "shopper@example.com", "password": "hunter22",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	assert.NotEmpty(t, login.Token)

	// Profile round-trip with the issued token
	resp, body = doJSON(app, http.MethodGet, "/api/v1/auth/me", nil,
		map[string]string{"Authorization": "Bearer " + login.Token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.User
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "shopper@example.com", me.Email)

	// Wrong password is rejected
	resp, _ = doJSON(app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "shopper@example.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	app, _ := setupApp()

	// No token
	resp, _ := doJSON(app, http.MethodGet, "/api/v1/admin/products", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Shopper token is not enough
	doJSON(app, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "shopper@example.com", "name": "Shopper", "password": "hunter22",
	}, nil)
	_, body := doJSON(app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "shopper@example.com", "password": "hunter22",
	}, nil)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))

	resp, _ = doJSON(app, http.MethodGet, "/api/v1/admin/products", nil,
		map[string]string{"Authorization": "Bearer " + login.Token})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(app, http.MethodPost, "/api/v1/auth/admin/login", map[string]string{
		"username": "admin", "password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	return login.Token
}

func TestAdminProductLifecycle(t *testing.T) {
	app, _ := setupApp()
	auth := map[string]string{"Authorization": "Bearer " + adminToken(t, app)}

	// Create
	resp, body := doJSON(app, http.MethodPost, "/api/v1/admin/products", map[string]interface{}{
		"name": "Nanoflare 1000 Z", "brand": "Yonex", "price": 240.00,
		"category": "Rackets", "stock": 8,
	}, auth)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Zero(t, created.Rating)

	// Partial update leaves other fields alone
	resp, body = doJSON(app, http.MethodPut, "/api/v1/admin/products/"+created.ID,
		map[string]interface{}{"price": 199.00}, auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.InDelta(t, 199.00, updated.Price, 0.0001)
	assert.Equal(t, "Nanoflare 1000 Z", updated.Name)

	// Stock update
	resp, body = doJSON(app, http.MethodPatch, "/api/v1/admin/products/"+created.ID+"/stock",
		map[string]interface{}{"stock": 3}, auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, 3, updated.Stock)

	// The new product is publicly visible
	resp, _ = doJSON(app, http.MethodGet, "/api/v1/products/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Delete
	resp, _ = doJSON(app, http.MethodDelete, "/api/v1/admin/products/"+created.ID, nil, auth)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(app, http.MethodGet, "/api/v1/products/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminOrderStatusUpdate(t *testing.T) {
	app, _ := setupApp()
	auth := map[string]string{"Authorization": "Bearer " + adminToken(t, app)}

	resp, body := doJSON(app, http.MethodPatch, "/api/v1/admin/orders/ORD-4023/status",
		map[string]string{"status": "Delivered"}, auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var order struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, models.StatusDelivered, order.Status)

	resp, _ = doJSON(app, http.MethodPatch, "/api/v1/admin/orders/ORD-4023/status",
		map[string]string{"status": "Lost"}, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReviewSubmissionAndDedup(t *testing.T) {
	app, _ := setupApp()

	payload := map[string]interface{}{
		"user": "New Reviewer", "rating": 4, "text": "Solid racket for the price.",
	}

	resp, created := doJSON(app, http.MethodPost, "/api/v1/products/1/reviews", payload, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var review models.Review
	require.NoError(t, json.Unmarshal(created, &review))
	assert.False(t, review.Verified, "freshly submitted reviews are not verified purchases")

	// Reviews for a product that does not exist are rejected
	resp, _ = doJSON(app, http.MethodPost, "/api/v1/products/999/reviews", payload, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The exact same submission inside the dedup window is rejected
	resp, _ = doJSON(app, http.MethodPost, "/api/v1/products/1/reviews", payload, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Rating aggregate reflects the accepted review
	resp, body := doJSON(app, http.MethodGet, "/api/v1/products/1", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var product models.Product
	require.NoError(t, json.Unmarshal(body, &product))
	assert.Equal(t, 4, product.Reviews)
}

func TestProductImagesFallBackToDemoGallery(t *testing.T) {
	app, _ := setupApp()

	resp, body := doJSON(app, http.MethodGet, "/api/v1/products/1/images", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var images []models.ProductImage
	require.NoError(t, json.Unmarshal(body, &images))
	require.NotEmpty(t, images)
	assert.True(t, images[0].IsPrimary)
}

func TestAssistantScriptedReplies(t *testing.T) {
	app, _ := setupApp()

	resp, body := doJSON(app, http.MethodPost, "/api/v1/assistant/chat",
		map[string]interface{}{"message": "I need a new racket"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reply struct {
		Role string `json:"role"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Equal(t, "model", reply.Role)
	assert.Contains(t, reply.Text, "Astrox 99 Pro")
	assert.Contains(t, reply.Text, "/product/1")

	// Empty message is rejected
	resp, _ = doJSON(app, http.MethodPost, "/api/v1/assistant/chat",
		map[string]interface{}{"message": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown topics get the generic storefront pitch
	resp, body = doJSON(app, http.MethodPost, "/api/v1/assistant/chat",
		map[string]interface{}{"message": "what is the weather"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Contains(t, reply.Text, "badminton gear")
}

func TestMergeSessionCartIntoAccount(t *testing.T) {
	app, _ := setupApp()
	session := map[string]string{handlers.SessionHeader: "sess-merge"}

	doJSON(app, http.MethodPost, "/api/v1/cart/items",
		map[string]interface{}{"productId": "1", "quantity": 2}, session)

	doJSON(app, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "merge@example.com", "name": "Merger", "password": "hunter22",
	}, nil)
	_, body := doJSON(app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "merge@example.com", "password": "hunter22",
	}, nil)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))

	headers := map[string]string{
		"Authorization":        "Bearer " + login.Token,
		handlers.SessionHeader: "sess-merge",
	}
	resp, body := doJSON(app, http.MethodPost, "/api/v1/account/cart/merge", nil, headers)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestOrderHistoryRequiresAuth(t *testing.T) {
	app, _ := setupApp()

	resp, _ := doJSON(app, http.MethodGet, "/api/v1/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
