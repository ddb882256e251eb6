// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CompanyProfileInput carries the business details captured at registration.
type CompanyProfileInput struct {
	CompanyName            string
	BusinessRegistrationNo string
	AddressLine1           string
	AddressLine2           string
	City                   string
	Country                string
	PostalCode             string
}

// SecondaryContactInput carries the optional alternate contact person.
type SecondaryContactInput struct {
	Name  string
	Email string
	Phone string
}

// RegisterUserInput defines the data required to register a new user account.
// PasswordConfirm must match Password; the comparison happens before any
// hashing so a typo never reaches the hasher.
type RegisterUserInput struct {
	FullName         string
	Email            string
	Phone            string
	Username         string
	Password         string
	PasswordConfirm  string
	SecurityQuestion string
	SecurityAnswer   string
	DateOfBirth      *time.Time
	Gender           string
	DeviceToken      string
	CompanyProfile   CompanyProfileInput
	SecondaryContact *SecondaryContactInput
}

// UpdateUserInput defines the mutable account fields. Nil pointers leave the
// stored value untouched.
type UpdateUserInput struct {
	FullName         *string
	Email            *string
	Phone            *string
	Status           *string
	DeviceToken      *string
	CompanyProfile   *CompanyProfileInput
	SecondaryContact *SecondaryContactInput
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token of the session to terminate.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserSummary is the projection used by user listings: the account's
// identity fields without profile or credential details.
type UserSummary struct {
	ID          uuid.UUID
	FullName    string
	CompanyName string
	Status      entity.UserStatus
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input LogoutInput) error

	ListUsers(ctx context.Context) ([]*UserSummary, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
