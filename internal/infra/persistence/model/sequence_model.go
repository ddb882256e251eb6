package model

import "time"

// RecordSequenceModel mirrors the 'record_sequences' table: one counter row
// per key prefix. The row is locked FOR UPDATE while a key is issued.
type RecordSequenceModel struct {
	Prefix    string `gorm:"type:varchar(8);primary_key"`
	LastKey   string `gorm:"type:varchar(32);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecordSequenceModel) TableName() string {
	return "record_sequences"
}
