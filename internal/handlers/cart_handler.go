package handlers

import (
	"fmt"
	"log"

	"badmintonpro/internal/models"
	"badmintonpro/internal/services"
	"badmintonpro/internal/store"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader identifies an anonymous shopping session.
const SessionHeader = "X-Session-ID"

// CartHandler handles HTTP requests for carts and wishlists. Anonymous
// shoppers work against a per-session store; authenticated shoppers work
// against persisted cart state under /account.
type CartHandler struct {
	sessions *store.SessionManager
	catalog  *services.CatalogService
	carts    *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(sessions *store.SessionManager, catalog *services.CatalogService, carts *services.CartService) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  catalog,
		carts:    carts,
	}
}

// RegisterRoutes registers cart routes. auth guards the /account group.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:productId", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)

	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleToggleWishlist)

	accountRoutes := router.Group("/account", auth)
	accountRoutes.Get("/cart", h.HandleGetUserCart)
	accountRoutes.Post("/cart/items", h.HandleAddUserItem)
	accountRoutes.Put("/cart/items/:productId", h.HandleUpdateUserItem)
	accountRoutes.Delete("/cart/items/:productId", h.HandleRemoveUserItem)
	accountRoutes.Delete("/cart", h.HandleClearUserCart)
	accountRoutes.Post("/cart/merge", h.HandleMergeCart)
	accountRoutes.Get("/wishlist", h.HandleGetUserWishlist)
	accountRoutes.Post("/wishlist/:productId", h.HandleToggleUserWishlist)
	accountRoutes.Post("/wishlist/merge", h.HandleMergeWishlist)
}

func (h *CartHandler) sessionCart(c *fiber.Ctx) (*store.CartStore, error) {
	sessionID := c.Get(SessionHeader)
	if sessionID == "" {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("%s header is required", SessionHeader),
		})
	}
	return h.sessions.Get(sessionID), nil
}

// HandleGetCart returns the session cart with its derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, errResp := h.sessionCart(c)
	if cart == nil {
		return errResp
	}
	items := cart.Items()
	return c.JSON(fiber.Map{
		"items":    items,
		"count":    cart.Count(),
		"subtotal": cart.Subtotal(),
	})
}

// HandleAddItem adds a product to the session cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	cart, errResp := h.sessionCart(c)
	if cart == nil {
		return errResp
	}

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product := h.catalog.GetByID(body.ProductID)
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", body.ProductID),
		})
	}

	cart.AddToCart(*product, body.Quantity)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items": cart.Items(),
		"count": cart.Count(),
	})
}

// HandleUpdateItem sets the quantity of a cart line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	cart, errResp := h.sessionCart(c)
	if cart == nil {
		return errResp
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart.UpdateQuantity(c.Params("productId"), body.Quantity)
	return c.JSON(fiber.Map{
		"items": cart.Items(),
		"count": cart.Count(),
	})
}

// HandleRemoveItem drops a product from the session cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart, errResp := h.sessionCart(c)
	if cart == nil {
		return errResp
	}
	cart.RemoveFromCart(c.Params("productId"))
	return c.JSON(fiber.Map{
		"items": cart.Items(),
		"count": cart.Count(),
	})
}

// HandleClearCart empties the session cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	cart, errResp := h.sessionCart(c)
	if cart == nil {
		return errResp
	}
	cart.ClearCart()
	return c.JSON(fiber.Map{"items": []models.CartItem{}, "count": 0})
}

// HandleGetWishlist returns the session wishlist.
func (h *CartHandler) HandleGetWishlist(c *fiber.Ctx) error {
	cart, errResp := h.sessionCart(c)
	if cart == nil {
		return errResp
	}
	return c.JSON(cart.Wishlist())
}

// HandleToggleWishlist toggles a product in the session wishlist.
func (h *CartHandler) HandleToggleWishlist(c *fiber.Ctx) error {
	cart, errResp := h.sessionCart(c)
	if cart == nil {
		return errResp
	}

	productID := c.Params("productId")
	product := h.catalog.GetByID(productID)
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", productID),
		})
	}

	cart.ToggleWishlist(*product)
	return c.JSON(fiber.Map{
		"wishlisted": cart.InWishlist(productID),
		"wishlist":   cart.Wishlist(),
	})
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// HandleGetUserCart returns the authenticated user's persisted cart.
func (h *CartHandler) HandleGetUserCart(c *fiber.Ctx) error {
	items, err := h.carts.GetCart(userID(c))
	if err != nil {
		log.Printf("Error loading cart for user %s: %v", userID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleAddUserItem adds a product to the persisted cart.
func (h *CartHandler) HandleAddUserItem(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.carts.AddToCart(userID(c), body.ProductID, body.Quantity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleUpdateUserItem sets the quantity of a persisted cart line.
func (h *CartHandler) HandleUpdateUserItem(c *fiber.Ctx) error {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.carts.UpdateQuantity(userID(c), c.Params("productId"), body.Quantity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRemoveUserItem drops a product from the persisted cart.
func (h *CartHandler) HandleRemoveUserItem(c *fiber.Ctx) error {
	if err := h.carts.RemoveFromCart(userID(c), c.Params("productId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove from cart",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClearUserCart empties the persisted cart.
func (h *CartHandler) HandleClearUserCart(c *fiber.Ctx) error {
	if err := h.carts.ClearCart(userID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleMergeCart folds the anonymous session cart into the persisted
// one, typically right after login, and drops the session.
func (h *CartHandler) HandleMergeCart(c *fiber.Ctx) error {
	sessionID := c.Get(SessionHeader)
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("%s header is required", SessionHeader),
		})
	}

	cart := h.sessions.Get(sessionID)
	if err := h.carts.MergeLocalCart(userID(c), cart.Items()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not merge cart",
			"error":   err.Error(),
		})
	}

	wishlistIDs := make([]string, 0)
	for _, p := range cart.Wishlist() {
		wishlistIDs = append(wishlistIDs, p.ID)
	}
	if err := h.carts.MergeLocalWishlist(userID(c), wishlistIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not merge wishlist",
			"error":   err.Error(),
		})
	}

	h.sessions.Drop(sessionID)

	items, err := h.carts.GetCart(userID(c))
	if err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(items)
}

// HandleGetUserWishlist returns the authenticated user's wishlist.
func (h *CartHandler) HandleGetUserWishlist(c *fiber.Ctx) error {
	products, err := h.carts.GetWishlist(userID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleToggleUserWishlist toggles a product in the persisted wishlist.
func (h *CartHandler) HandleToggleUserWishlist(c *fiber.Ctx) error {
	wishlisted, err := h.carts.ToggleWishlist(userID(c), c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not toggle wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"wishlisted": wishlisted})
}

// HandleMergeWishlist folds a client-provided wishlist into the persisted
// one.
func (h *CartHandler) HandleMergeWishlist(c *fiber.Ctx) error {
	var body struct {
		ProductIDs []string `json:"productIds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.carts.MergeLocalWishlist(userID(c), body.ProductIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not merge wishlist",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
