package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order status state set.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// ShippingAddress is collected from the checkout form. All fields but the
// phone number are required before an order may be submitted.
type ShippingAddress struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country" validate:"required"`
}

// OrderItem is a line item snapshotted at purchase time. Name, price and
// image are frozen copies, independent of later product mutation.
type OrderItem struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID      string  `json:"order_id" gorm:"column:order_id;index"`
	ProductID    string  `json:"product_id" gorm:"column:product_id"`
	ProductName  string  `json:"product_name" gorm:"column:product_name"`
	ProductImage string  `json:"product_image" gorm:"column:product_image"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	Price        float64 `json:"price"` // Price at the time of order
}

// Order represents a customer order. Orders are created once at checkout
// and afterwards only move through the status state set.
type Order struct {
	ID              string                               `json:"-" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber     string                               `json:"id" gorm:"column:order_number;uniqueIndex"`
	UserID          string                               `json:"user_id,omitempty" gorm:"column:user_id;index"`
	Subtotal        float64                              `json:"subtotal"`
	Shipping        float64                              `json:"shipping"`
	Tax             float64                              `json:"tax"`
	Total           float64                              `json:"total"`
	Status          string                               `json:"status"`
	ShippingAddress datatypes.JSONType[ShippingAddress]  `json:"shippingAddress" gorm:"column:shipping_address"`
	Items           []OrderItem                          `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time                            `json:"created_at"`
	UpdatedAt       time.Time                            `json:"updated_at"`
}

// OrderSummary is the compact listing shape shown in account and admin
// order tables. Date carries the human-readable creation date.
type OrderSummary struct {
	OrderNumber string  `json:"id"`
	Date        string  `json:"date"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
}

// ValidStatus reports whether s is a member of the order status set.
func ValidStatus(s string) bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
