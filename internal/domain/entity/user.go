// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is the lifecycle flag of a business account. Accounts are
// deactivated rather than deleted in normal operation.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// User is a registered business account. It carries the person-level
// identity; company-level data lives in the attached CompanyProfile.
type User struct {
	ID               uuid.UUID  // Internal primary key, never exposed as a business key.
	FullName         string     // Contact person's full name.
	Email            string     // Primary contact email, globally unique.
	Phone            string     // Primary contact phone number.
	Username         string     // Login name, globally unique.
	PasswordHash     string     // Salted bcrypt hash; the plaintext is never persisted.
	SecurityQuestion string     // Account-recovery question chosen at registration.
	SecurityAnswer   string     // Answer to the recovery question.
	DateOfBirth      *time.Time // Optional date of birth.
	Gender           string     // Free-form, as submitted.
	Status           UserStatus // Active/Inactive flag used instead of hard deletion.
	DeviceToken      string     // Push-notification registration token, empty when unset.
	CompanyProfile   *CompanyProfile
	SecondaryContact *SecondaryContact // Optional company contact block; nil when not supplied.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CompanyProfile holds the company-level registration data of an account.
type CompanyProfile struct {
	UserID                 uuid.UUID // Foreign key linking the profile to its User.
	CompanyName            string
	BusinessRegistrationNo string
	AddressLine1           string
	AddressLine2           string
	City                   string
	Country                string
	PostalCode             string
	UpdatedAt              time.Time
}

// SecondaryContact is the optional second contact block of a company.
type SecondaryContact struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Phone  string
}

// CompanyName returns the account's company name, or the empty string
// when no company profile is attached.
func (u *User) CompanyName() string {
	if u.CompanyProfile == nil {
		return ""
	}

	return u.CompanyProfile.CompanyName
}
