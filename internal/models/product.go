package models

import "gorm.io/gorm"

// Product categories form a fixed enumeration.
const (
	CategoryRackets     = "Rackets"
	CategoryFootwear    = "Footwear"
	CategoryApparel     = "Apparel"
	CategoryAccessories = "Accessories"
)

// ProductSpecs is the optional spec bag attached to rackets and shoes.
type ProductSpecs struct {
	Weight  string `json:"weight,omitempty"`
	Grip    string `json:"grip,omitempty"`
	Balance string `json:"balance,omitempty"`
	Flex    string `json:"flex,omitempty"`
}

// Product represents an item in the shop catalog.
type Product struct {
	ID             string        `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty"`
	Name           string        `json:"name" validate:"required,min=2,max=120"`
	NameCN         string        `json:"name_cn,omitempty" gorm:"column:name_cn"`
	Description    string        `json:"description,omitempty" validate:"omitempty,max=1000"`
	DescriptionCN  string        `json:"description_cn,omitempty" gorm:"column:description_cn"`
	Brand          string        `json:"brand" validate:"required"`
	Price          float64       `json:"price" validate:"gte=0"`
	OriginalPrice  float64       `json:"originalPrice,omitempty" gorm:"column:original_price"`
	Rating         float64       `json:"rating" validate:"gte=0,lte=5"`
	Reviews        int           `json:"reviews" gorm:"column:reviews_count"`
	Image          string        `json:"image"`
	Category       string        `json:"category" validate:"required,oneof=Rackets Footwear Apparel Accessories"`
	Tags           []string      `json:"tags,omitempty" gorm:"type:text;serializer:json"`
	Stock          int           `json:"stock" validate:"gte=0"`
	SKU            string        `json:"sku,omitempty" gorm:"column:sku"`
	Specs          *ProductSpecs `json:"specs,omitempty" gorm:"type:text;serializer:json"`
	IsNew          bool          `json:"isNew,omitempty" gorm:"column:is_new"`
	SalePercentage int           `json:"salePercentage,omitempty" gorm:"column:sale_percentage"`
	gorm.Model     // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductImage is one entry of a product's ordered image gallery.
// Exactly one image per product carries the primary flag; the primary
// image URL is mirrored into the product's Image field.
type ProductImage struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID    string `json:"productId" gorm:"column:product_id;index" validate:"required"`
	ImageURL     string `json:"imageUrl" gorm:"column:image_url" validate:"required,url"`
	AltText      string `json:"altText,omitempty" gorm:"column:alt_text"`
	DisplayOrder int    `json:"displayOrder" gorm:"column:display_order"`
	IsPrimary    bool   `json:"isPrimary" gorm:"column:is_primary"`
	gorm.Model
}
