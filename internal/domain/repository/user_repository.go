// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. Ownership checks are deliberately NOT done
// here; repositories stay storage-only and the use case layer decides who may
// touch a record.
package repository

import (
	"context"
	"errors"

	"washline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Save persists a user record, creating or overwriting. Idempotent.
	Save(ctx context.Context, user *entity.User) error
}
