package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"badmintonpro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for the admin dashboard. Every route
// sits behind the admin guard.
type AdminHandler struct {
	admin  *services.AdminService
	images *services.ImageService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *services.AdminService, images *services.ImageService) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		images: images,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app behind the
// given guard.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	adminRoutes := router.Group("/admin", guard)

	adminRoutes.Get("/products", h.HandleListProducts)
	adminRoutes.Post("/products", h.HandleCreateProduct)
	adminRoutes.Put("/products/:id", h.HandleUpdateProduct)
	adminRoutes.Patch("/products/:id/stock", h.HandleUpdateStock)
	adminRoutes.Delete("/products/:id", h.HandleDeleteProduct)
	adminRoutes.Get("/products/low-stock", h.HandleLowStock)

	adminRoutes.Post("/products/:id/images", h.HandleAddImage)
	adminRoutes.Put("/products/:id/images/order", h.HandleReorderImages)
	adminRoutes.Put("/images/:id", h.HandleUpdateImage)
	adminRoutes.Patch("/images/:id/primary", h.HandleSetPrimaryImage)
	adminRoutes.Delete("/images/:id", h.HandleDeleteImage)

	adminRoutes.Get("/orders", h.HandleListOrders)
	adminRoutes.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)

	adminRoutes.Get("/reviews", h.HandleListReviews)
	adminRoutes.Delete("/reviews/:id", h.HandleDeleteReview)
}

// HandleListProducts returns the full catalog for the admin table.
func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.admin.ListProducts()
	if err != nil {
		log.Printf("Error listing products for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a new catalog entry.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input services.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.admin.CreateProduct(input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial edit to a product.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.admin.UpdateProduct(productID, input)
	if err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleUpdateStock sets a product's stock level.
func (h *AdminHandler) HandleUpdateStock(c *fiber.Ctx) error {
	productID := c.Params("id")

	var body struct {
		Stock int `json:"stock"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.admin.UpdateStock(productID, body.Stock)
	if err != nil {
		log.Printf("Error updating stock for product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update stock",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product from the catalog.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.admin.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleLowStock lists products at or below the restock threshold.
func (h *AdminHandler) HandleLowStock(c *fiber.Ctx) error {
	threshold, _ := strconv.Atoi(c.Query("threshold", "10"))
	products, err := h.admin.ListLowStock(threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve low stock products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleAddImage appends an image to a product's gallery.
func (h *AdminHandler) HandleAddImage(c *fiber.Ctx) error {
	productID := c.Params("id")

	var input services.ImageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	image, err := h.images.Add(productID, input)
	if err != nil {
		log.Printf("Error adding image to product %s: %v", productID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add image",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// HandleUpdateImage edits an image's URL and alt text.
func (h *AdminHandler) HandleUpdateImage(c *fiber.Ctx) error {
	imageID := c.Params("id")

	var input services.ImageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	image, err := h.images.Update(imageID, input)
	if err != nil {
		log.Printf("Error updating image %s: %v", imageID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Image with ID %s not found", imageID),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not update image",
			"error":   err.Error(),
		})
	}
	return c.JSON(image)
}

// HandleSetPrimaryImage promotes an image to primary.
func (h *AdminHandler) HandleSetPrimaryImage(c *fiber.Ctx) error {
	imageID := c.Params("id")
	image, err := h.images.SetPrimary(imageID)
	if err != nil {
		log.Printf("Error setting primary image %s: %v", imageID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Image with ID %s not found", imageID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not set primary image",
			"error":   err.Error(),
		})
	}
	return c.JSON(image)
}

// HandleReorderImages rewrites a gallery's display order.
func (h *AdminHandler) HandleReorderImages(c *fiber.Ctx) error {
	productID := c.Params("id")

	var body struct {
		ImageIDs []string `json:"imageIds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.images.Reorder(productID, body.ImageIDs); err != nil {
		log.Printf("Error reordering images for product %s: %v", productID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not reorder images",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteImage removes an image from its gallery.
func (h *AdminHandler) HandleDeleteImage(c *fiber.Ctx) error {
	imageID := c.Params("id")
	if err := h.images.Delete(imageID); err != nil {
		log.Printf("Error deleting image %s: %v", imageID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Image with ID %s not found", imageID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete image",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListOrders returns every order for the fulfilment table.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.admin.ListOrders()
	if err != nil {
		log.Printf("Error listing orders for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus moves an order to a new fulfilment status.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderNumber := c.Params("id")
	if !strings.HasPrefix(orderNumber, "#") {
		orderNumber = "#" + orderNumber
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.admin.UpdateOrderStatus(orderNumber, body.Status)
	if err != nil {
		log.Printf("Error updating status of order %s: %v", orderNumber, err)
		if strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order status",
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order %s not found", orderNumber),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleListReviews returns every review for the moderation table.
func (h *AdminHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.admin.ListReviews()
	if err != nil {
		log.Printf("Error listing reviews for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleDeleteReview removes a review and refreshes the product's rating.
func (h *AdminHandler) HandleDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")
	if err := h.admin.DeleteReview(reviewID); err != nil {
		log.Printf("Error deleting review %s: %v", reviewID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Review with ID %s not found", reviewID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete review",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
