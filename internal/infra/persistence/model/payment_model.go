package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Key is the issued business key
// ("PID00000001") used for all external lookups.
type PaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key       string    `gorm:"column:payment_key;type:varchar(32);unique;not null"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderKey  string    `gorm:"type:varchar(32);not null"`
	Amount    float64   `gorm:"type:numeric(14,2);not null"`
	Method    string    `gorm:"type:varchar(50)"`
	Remark    string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
