package handlers

import (
	"fmt"
	"log"
	"strings"

	"badmintonpro/internal/models"
	"badmintonpro/internal/services"
	"badmintonpro/internal/store"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and order history.
type OrderHandler struct {
	service  *services.OrderService
	sessions *store.SessionManager
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, sessions *store.SessionManager) *OrderHandler {
	return &OrderHandler{
		service:  service,
		sessions: sessions,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. optional
// attaches user identity when a token is present; auth requires one.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, optional, auth fiber.Handler) {
	router.Post("/checkout", optional, h.HandleCheckout)

	orderRoutes := router.Group("/orders", auth)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByNumber)
}

// HandleCheckout submits the session cart as an order. Guests may check
// out; when a valid token accompanies the request the order is attached
// to the user.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	sessionID := c.Get(SessionHeader)
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("%s header is required", SessionHeader),
		})
	}
	cart := h.sessions.Get(sessionID)

	var body struct {
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing checkout body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.Checkout(cart, body.ShippingAddress, userID(c))
	if err != nil {
		log.Printf("Checkout failed: %v", err)
		if strings.Contains(err.Error(), "cart is empty") ||
			strings.Contains(err.Error(), "shipping address is incomplete") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Checkout rejected",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders lists the authenticated user's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	summaries, err := h.service.GetOrders(userID(c))
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(summaries)
}

// HandleGetOrderByNumber retrieves one of the user's orders by its order
// number.
func (h *OrderHandler) HandleGetOrderByNumber(c *fiber.Ctx) error {
	// The leading "#" of an order number is awkward in URLs, so clients
	// may omit it.
	orderNumber := c.Params("id")
	if !strings.HasPrefix(orderNumber, "#") {
		orderNumber = "#" + orderNumber
	}
	order, err := h.service.GetOrderByNumber(orderNumber)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderNumber, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Order %s not found", orderNumber),
		})
	}
	if order.UserID != "" && order.UserID != userID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "This order belongs to another account",
		})
	}
	return c.JSON(order)
}
