package fixtures

import (
	"time"

	"badmintonpro/internal/models"
)

// Orders is the demo order history shown before any checkout happens.
var Orders = []models.Order{
	{
		ID:          "demo-order-1",
		OrderNumber: "#ORD-4023",
		Subtotal:    82.41,
		Shipping:    15.00,
		Tax:         6.59,
		Total:       104.00,
		Status:      models.StatusShipped,
		CreatedAt:   time.Date(2023, time.October, 24, 10, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2023, time.October, 24, 10, 30, 0, 0, time.UTC),
	},
	{
		ID:          "demo-order-2",
		OrderNumber: "#ORD-3901",
		Subtotal:    194.91,
		Shipping:    0,
		Tax:         15.59,
		Total:       210.50,
		Status:      models.StatusDelivered,
		CreatedAt:   time.Date(2023, time.September, 12, 15, 12, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2023, time.September, 14, 9, 0, 0, 0, time.UTC),
	},
}

// GalleryFor synthesizes a demo image gallery for a product whose gallery
// table is empty. The first entry mirrors the product's own image.
func GalleryFor(productID, primaryImage string) []models.ProductImage {
	return []models.ProductImage{
		{
			ID:           "img-" + productID + "-0",
			ProductID:    productID,
			ImageURL:     primaryImage,
			AltText:      "Main product image",
			DisplayOrder: 0,
			IsPrimary:    true,
		},
		{
			ID:           "img-" + productID + "-1",
			ProductID:    productID,
			ImageURL:     "https://images.badmintonpro.shop/gallery/detail-angle.jpg",
			AltText:      "Detail view 1",
			DisplayOrder: 1,
		},
		{
			ID:           "img-" + productID + "-2",
			ProductID:    productID,
			ImageURL:     "https://images.badmintonpro.shop/gallery/detail-closeup.jpg",
			AltText:      "Detail view 2",
			DisplayOrder: 2,
		},
	}
}
