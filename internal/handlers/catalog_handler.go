package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"badmintonpro/internal/repositories"
	"badmintonpro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the public storefront catalog.
type CatalogHandler struct {
	catalog *services.CatalogService
	reviews *services.ReviewService
	images  *services.ImageService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService, reviews *services.ReviewService, images *services.ImageService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		reviews: reviews,
		images:  images,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/trending", h.HandleTrending)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Get("/:id/reviews", h.HandleListReviews)
	productRoutes.Post("/:id/reviews", h.HandleCreateReview)
	productRoutes.Get("/:id/images", h.HandleListImages)
}

// HandleListProducts lists the catalog, optionally filtered by category,
// search query or the sale flag. Filters are mutually exclusive; category
// wins over search, search wins over sale.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(h.catalog.ListByCategory(category))
	}
	if query := c.Query("search"); query != "" {
		return c.JSON(h.catalog.Search(query))
	}
	if c.Query("sale") == "true" {
		return c.JSON(h.catalog.ListOnSale())
	}
	return c.JSON(h.catalog.List())
}

// HandleTrending lists the most-reviewed products.
func (h *CatalogHandler) HandleTrending(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "4"))
	return c.JSON(h.catalog.ListTrending(limit))
}

// HandleGetProduct retrieves a single product by its ID.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product := h.catalog.GetByID(productID)
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", productID),
		})
	}
	return c.JSON(product)
}

// HandleListReviews lists a product's reviews, newest first.
func (h *CatalogHandler) HandleListReviews(c *fiber.Ctx) error {
	return c.JSON(h.reviews.ListByProduct(c.Params("id")))
}

// HandleCreateReview submits a new review for a product.
func (h *CatalogHandler) HandleCreateReview(c *fiber.Ctx) error {
	productID := c.Params("id")

	var input services.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing review body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	review, err := h.reviews.Create(productID, input)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateReview) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "This review was already submitted",
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error creating review for product %s: %v", productID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleListImages returns a product's image gallery in display order.
func (h *CatalogHandler) HandleListImages(c *fiber.Ctx) error {
	return c.JSON(h.images.ListByProduct(c.Params("id")))
}
