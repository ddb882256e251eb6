package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. ManufacturingID is the
// catalog's external identifier and must stay unique.
type ProductModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ManufacturingID string    `gorm:"type:varchar(100);unique;not null"`
	Name            string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text"`
	UnitPrice       float64   `gorm:"type:numeric(12,2);not null"`
	StockOnHand     int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
