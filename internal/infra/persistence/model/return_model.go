package model

import (
	"time"

	"github.com/google/uuid"
)

// ReturnModel mirrors the 'returns' table. Key is the issued business key
// ("RID000042") used for all external lookups.
type ReturnModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key           string    `gorm:"column:return_key;type:varchar(32);unique;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ReturnDate    time.Time `gorm:"not null"`
	PaymentStatus string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []ReturnItemModel `gorm:"foreignKey:ReturnID"`
}

// TableName explicitly sets the table name for GORM.
func (ReturnModel) TableName() string {
	return "returns"
}

// ReturnItemModel mirrors the 'return_items' table.
type ReturnItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ReturnID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ManufacturingID string    `gorm:"type:varchar(100);not null"`
	Quantity        int       `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReturnItemModel) TableName() string {
	return "return_items"
}
