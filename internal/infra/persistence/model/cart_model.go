package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. Each user owns at most one cart.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. One row per product line;
// the cart/product pair is unique so quantity updates replace in place.
type CartItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CartID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ManufacturingID string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity        int       `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
