package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Key is the issued business key
// ("OD001") used for all external lookups.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key           string    `gorm:"column:order_key;type:varchar(32);unique;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyName   string    `gorm:"type:varchar(200)"`
	Status        string    `gorm:"type:varchar(20);not null"`
	PaymentStatus string    `gorm:"type:varchar(20);not null"`
	OrderDate     time.Time `gorm:"not null"`
	OverdueDate   *time.Time
	TotalAmount   float64 `gorm:"type:numeric(14,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPrice is the catalog
// price captured at ordering time.
type OrderItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ManufacturingID string    `gorm:"type:varchar(100);not null"`
	Quantity        int       `gorm:"not null"`
	UnitPrice       float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
