package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName         string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	Phone            string    `gorm:"type:varchar(50)"`
	Username         string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	SecurityQuestion string    `gorm:"type:varchar(255)"`
	SecurityAnswer   string    `gorm:"type:varchar(255)"`
	DateOfBirth      *time.Time
	Gender           string `gorm:"type:varchar(20)"`
	Status           string `gorm:"type:varchar(20);not null;default:'active'"`
	DeviceToken      string `gorm:"type:varchar(512)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time `gorm:"index"`

	CompanyProfile   *CompanyProfileModel   `gorm:"foreignKey:UserID"`
	SecondaryContact *SecondaryContactModel `gorm:"foreignKey:UserID"`
	RefreshTokens    []RefreshTokenModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CompanyProfileModel mirrors the 'company_profiles' table. UserID references users.id (UUID).
type CompanyProfileModel struct {
	UserID                 uuid.UUID `gorm:"primaryKey"`
	CompanyName            string    `gorm:"type:varchar(200);not null"`
	BusinessRegistrationNo string    `gorm:"type:varchar(100)"`
	AddressLine1           string    `gorm:"type:varchar(255)"`
	AddressLine2           string    `gorm:"type:varchar(255)"`
	City                   string    `gorm:"type:varchar(100)"`
	Country                string    `gorm:"type:varchar(100)"`
	PostalCode             string    `gorm:"type:varchar(20)"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyProfileModel) TableName() string {
	return "company_profiles"
}

// SecondaryContactModel mirrors the 'secondary_contacts' table. At most one per user.
type SecondaryContactModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SecondaryContactModel) TableName() string {
	return "secondary_contacts"
}
