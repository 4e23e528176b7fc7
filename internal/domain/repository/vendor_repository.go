package repository

import (
	"context"
	"errors"

	"washline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when a vendor profile does not exist.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the standard operations for vendor persistence.
type VendorRepository interface {
	// FindByID retrieves a single vendor by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindAll retrieves every vendor on the listing index. Vendors whose
	// primary record is missing behind a listing pointer are skipped.
	FindAll(ctx context.Context) ([]*entity.Vendor, error)

	// Save persists a vendor record and refreshes its listing index row.
	// Idempotent; the two writes are not atomic.
	Save(ctx context.Context, vendor *entity.Vendor) error
}
