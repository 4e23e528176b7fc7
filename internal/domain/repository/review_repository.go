package repository

import (
	"context"

	"washline/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the standard operations for review persistence.
// Reviews are write-once; there is no update or delete.
type ReviewRepository interface {
	// FindByVendor retrieves all reviews for a vendor, oldest first.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Review, error)

	// Save persists a review under its vendor-scoped key.
	Save(ctx context.Context, review *entity.Review) error
}
