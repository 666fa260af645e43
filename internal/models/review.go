package models

import "time"

// Review is a customer product review. DedupKey is an idempotency key
// derived from product, author and a coarse submission-time bucket; a
// repository rejects a second write with the same key.
type Review struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID   string    `json:"productId" gorm:"column:product_id;index" validate:"required"`
	UserName    string    `json:"user" gorm:"column:user_name" validate:"required"`
	AvatarColor string    `json:"avatarColor" gorm:"column:avatar_color"`
	Verified    bool      `json:"verified"`
	Rating      float64   `json:"rating" validate:"required,gte=1,lte=5"`
	Text        string    `json:"text" validate:"required"`
	DedupKey    string    `json:"-" gorm:"column:dedup_key;uniqueIndex"`
	Date        string    `json:"date" gorm:"-"` // relative display date, filled on read
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
