package services_test

import (
	"testing"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
	"badmintonpro/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageService() (*services.ImageService, repositories.ImageRepository, repositories.ProductRepository) {
	imageRepo := repositories.NewMemoryImageRepository(nil)
	productRepo := repositories.NewMemoryProductRepository([]models.Product{
		{ID: "1", Name: "Astrox 99 Pro", Brand: "Yonex", Category: models.CategoryRackets, Image: "https://images.badmintonpro.shop/products/astrox-99-pro.jpg"},
	})
	return services.NewImageService(imageRepo, productRepo), imageRepo, productRepo
}

func TestImageService_EmptyGalleryServesDemoImages(t *testing.T) {
	service, _, _ := newImageService()

	images := service.ListByProduct("1")

	require.NotEmpty(t, images)
	assert.True(t, images[0].IsPrimary)
	assert.Equal(t, "https://images.badmintonpro.shop/products/astrox-99-pro.jpg", images[0].ImageURL)
}

func TestImageService_AddAppendsAtEndOfGallery(t *testing.T) {
	service, _, _ := newImageService()

	first, err := service.Add("1", services.ImageInput{ImageURL: "https://images.badmintonpro.shop/g/a.jpg", IsPrimary: true})
	require.NoError(t, err)
	assert.Equal(t, 0, first.DisplayOrder)

	second, err := service.Add("1", services.ImageInput{ImageURL: "https://images.badmintonpro.shop/g/b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.DisplayOrder)
	assert.False(t, second.IsPrimary)
}

func TestImageService_SetPrimaryKeepsSinglePrimaryAndSyncsProduct(t *testing.T) {
	service, imageRepo, productRepo := newImageService()

	first, err := service.Add("1", services.ImageInput{ImageURL: "https://images.badmintonpro.shop/g/a.jpg", IsPrimary: true})
	require.NoError(t, err)
	second, err := service.Add("1", services.ImageInput{ImageURL: "https://images.badmintonpro.shop/g/b.jpg"})
	require.NoError(t, err)

	_, err = service.SetPrimary(second.ID)
	require.NoError(t, err)

	images, err := imageRepo.GetByProduct("1")
	require.NoError(t, err)
	primaries := 0
	for _, img := range images {
		if img.IsPrimary {
			primaries++
			assert.Equal(t, second.ID, img.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	demoted, err := imageRepo.GetByID(first.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsPrimary)

	product, err := productRepo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "https://images.badmintonpro.shop/g/b.jpg", product.Image)
}

func TestImageService_ReorderRewritesDisplayOrder(t *testing.T) {
	service, imageRepo, _ := newImageService()

	a, _ := service.Add("1", services.ImageInput{ImageURL: "https://images.badmintonpro.shop/g/a.jpg"})
	b, _ := service.Add("1", services.ImageInput{ImageURL: "https://images.badmintonpro.shop/g/b.jpg"})
	c, _ := service.Add("1", services.ImageInput{ImageURL: "https://images.badmintonpro.shop/g/c.jpg"})

	require.NoError(t, service.Reorder("1", []string{c.ID, a.ID, b.ID}))

	images, err := imageRepo.GetByProduct("1")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, c.ID, images[0].ID)
	assert.Equal(t, a.ID, images[1].ID)
	assert.Equal(t, b.ID, images[2].ID)

	// Foreign ids are rejected
	assert.Error(t, service.Reorder("1", []string{"stranger"}))
}

func TestImageService_AddRejectsBadURL(t *testing.T) {
	service, _, _ := newImageService()

	_, err := service.Add("1", services.ImageInput{ImageURL: "not a url"})
	assert.Error(t, err)
}
