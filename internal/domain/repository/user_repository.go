// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tripflow/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username is already taken.
	ErrDuplicateUser = errors.New("username already taken")
)

// UserRepository defines the standard operations for user persistence.
// Only the local deployment variant has one; the remote variant delegates
// identity entirely to the external provider.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateUser when the
	// username is taken; the unique constraint guarantees no second row is
	// ever created.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
