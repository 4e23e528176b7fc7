package kv

import (
	"context"
	"encoding/json"

	"washline/internal/domain/entity"
	domainerrors "washline/internal/domain/errors"
	"washline/internal/domain/kvstore"
	"washline/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewRepository implements the repository.ReviewRepository interface.
// The review's primary record lives directly under the vendor-scoped key, so
// the vendor index needs no separate pointer rows.
type reviewRepository struct {
	store kvstore.Store
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(store kvstore.Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

// FindByVendor retrieves all reviews for a vendor, oldest first.
func (repo *reviewRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Review, error) {
	entries, err := repo.store.GetByPrefix(ctx, reviewVendorPrefix+vendorID.String()+":")
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to scan vendor reviews")
	}

	reviews := make([]*entity.Review, 0, len(entries))
	for _, entry := range entries {
		var review entity.Review
		if err := json.Unmarshal(entry.Value, &review); err != nil {
			return nil, errors.Wrap(err, "failed to decode review record")
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

// Save persists a review under its vendor-scoped key.
func (repo *reviewRepository) Save(ctx context.Context, review *entity.Review) error {
	if err := repo.store.Set(ctx, reviewVendorKey(review.VendorID, review.ID), review); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save review record")
	}

	return nil
}
