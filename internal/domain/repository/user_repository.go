// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserEmailTaken is returned by Create when the email already belongs to another user.
	ErrUserEmailTaken = errors.New("user email already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID. The cart is not loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address. The cart is not loaded.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Returns ErrUserEmailTaken on a duplicate email.
	Create(ctx context.Context, user *entity.User) error
}
