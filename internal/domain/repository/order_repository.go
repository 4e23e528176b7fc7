package repository

import (
	"context"
	"errors"

	"washline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindByStudent retrieves all orders placed by a student, oldest first.
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Order, error)

	// FindByVendor retrieves all orders directed at a vendor, oldest first.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error)

	// Save persists an order and refreshes its student and vendor index rows.
	// Idempotent; the three writes are not atomic.
	Save(ctx context.Context, order *entity.Order) error
}
