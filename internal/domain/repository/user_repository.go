// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bizops/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including the
	// company profile and secondary contact when present.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether any user already holds the
	// given email address or username. Registration uses this single
	// combined check so the caller cannot tell which field collided.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// List retrieves all users ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and their dependent profile rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
