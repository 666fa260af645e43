package services

import (
	"encoding/json"
	"fmt"
	"log"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AdminService backs the admin dashboard: catalog CRUD, stock control,
// order fulfilment and review moderation. All mutations go through the
// configured repository, so demo mode edits persist for the process
// lifetime and database mode edits persist durably.
type AdminService struct {
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	reviews     *ReviewService
	publisher   Publisher
	validate    *validator.Validate
}

// NewAdminService creates a new AdminService. publisher may be nil.
func NewAdminService(productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository, reviews *ReviewService, publisher Publisher) *AdminService {
	return &AdminService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		reviews:     reviews,
		publisher:   publisher,
		validate:    validator.New(),
	}
}

// CreateProductInput is the admin product creation payload.
type CreateProductInput struct {
	Name           string               `json:"name" validate:"required,min=2,max=120"`
	NameCN         string               `json:"name_cn"`
	Description    string               `json:"description" validate:"omitempty,max=1000"`
	DescriptionCN  string               `json:"description_cn"`
	Brand          string               `json:"brand" validate:"required"`
	Price          float64              `json:"price" validate:"gte=0"`
	OriginalPrice  float64              `json:"originalPrice"`
	Image          string               `json:"image"`
	Category       string               `json:"category" validate:"required,oneof=Rackets Footwear Apparel Accessories"`
	Tags           []string             `json:"tags"`
	Stock          int                  `json:"stock" validate:"gte=0"`
	SKU            string               `json:"sku"`
	Specs          *models.ProductSpecs `json:"specs"`
	IsNew          bool                 `json:"isNew"`
	SalePercentage int                  `json:"salePercentage"`
}

// UpdateProductInput carries a partial product edit. Nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name           *string              `json:"name"`
	NameCN         *string              `json:"name_cn"`
	Description    *string              `json:"description"`
	DescriptionCN  *string              `json:"description_cn"`
	Brand          *string              `json:"brand"`
	Price          *float64             `json:"price"`
	OriginalPrice  *float64             `json:"originalPrice"`
	Image          *string              `json:"image"`
	Category       *string              `json:"category"`
	Tags           []string             `json:"tags"`
	Stock          *int                 `json:"stock"`
	SKU            *string              `json:"sku"`
	Specs          *models.ProductSpecs `json:"specs"`
	IsNew          *bool                `json:"isNew"`
	SalePercentage *int                 `json:"salePercentage"`
}

// ListProducts returns the full catalog for the admin table.
func (s *AdminService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// CreateProduct stores a new catalog entry. New products start unrated;
// the rating aggregate only ever moves through review writes.
func (s *AdminService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	product := &models.Product{
		ID:             uuid.New().String(),
		Name:           input.Name,
		NameCN:         input.NameCN,
		Description:    input.Description,
		DescriptionCN:  input.DescriptionCN,
		Brand:          input.Brand,
		Price:          input.Price,
		OriginalPrice:  input.OriginalPrice,
		Rating:         0,
		Reviews:        0,
		Image:          input.Image,
		Category:       input.Category,
		Tags:           input.Tags,
		Stock:          input.Stock,
		SKU:            input.SKU,
		Specs:          input.Specs,
		IsNew:          input.IsNew,
		SalePercentage: input.SalePercentage,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct applies a partial edit to an existing product with a
// read-modify-write cycle, so omitted fields keep their stored values.
func (s *AdminService) UpdateProduct(id string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.NameCN != nil {
		product.NameCN = *input.NameCN
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.DescriptionCN != nil {
		product.DescriptionCN = *input.DescriptionCN
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Category != nil {
		if !validCategory(*input.Category) {
			return nil, fmt.Errorf("invalid category: %s", *input.Category)
		}
		product.Category = *input.Category
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Specs != nil {
		product.Specs = input.Specs
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}
	if input.SalePercentage != nil {
		product.SalePercentage = *input.SalePercentage
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// UpdateStock sets a product's stock level directly.
func (s *AdminService) UpdateStock(id string, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	if err := s.productRepo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

// DeleteProduct removes a product from the catalog.
func (s *AdminService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}

// ListLowStock returns products at or below the stock threshold for the
// dashboard's restock panel.
func (s *AdminService) ListLowStock(threshold int) ([]models.Product, error) {
	if threshold <= 0 {
		threshold = 10
	}
	return s.productRepo.GetLowStock(threshold)
}

// ListOrders returns every order, newest first, for the fulfilment table.
func (s *AdminService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateOrderStatus moves an order to a new fulfilment status and
// publishes the change for downstream consumers.
func (s *AdminService) UpdateOrderStatus(orderNumber, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	if err := s.orderRepo.UpdateStatus(orderNumber, status); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByNumber(orderNumber)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		body, err := json.Marshal(map[string]interface{}{
			"orderNumber": order.OrderNumber,
			"status":      order.Status,
		})
		if err == nil {
			if err := s.publisher.Publish("order", "order.status_updated", body); err != nil {
				log.Printf("Warning: failed to publish order.status_updated event: %v", err)
			}
		}
	}
	return order, nil
}

// ModeratedReview pairs a review with its product's name for the
// moderation table.
type ModeratedReview struct {
	models.Review
	ProductName string `json:"productName"`
}

// ListReviews returns every review annotated with its product name.
func (s *AdminService) ListReviews() ([]ModeratedReview, error) {
	reviews, err := s.reviews.ListAll()
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	moderated := make([]ModeratedReview, 0, len(reviews))
	for _, r := range reviews {
		name, ok := names[r.ProductID]
		if !ok {
			if p, err := s.productRepo.GetByID(r.ProductID); err == nil && p != nil {
				name = p.Name
			}
			names[r.ProductID] = name
		}
		moderated = append(moderated, ModeratedReview{Review: r, ProductName: name})
	}
	return moderated, nil
}

// DeleteReview removes a review through the review service so the rating
// aggregate is recomputed.
func (s *AdminService) DeleteReview(reviewID string) error {
	return s.reviews.Delete(reviewID)
}

func validCategory(c string) bool {
	switch c {
	case models.CategoryRackets, models.CategoryFootwear, models.CategoryApparel, models.CategoryAccessories:
		return true
	}
	return false
}
