package usecase

import (
	"context"

	"washline/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput defines the data required to review a vendor.
type SubmitReviewInput struct {
	VendorID uuid.UUID `json:"vendorId" validate:"required"`
	OrderID  string    `json:"orderId" validate:"required"`
	Rating   int       `json:"rating" validate:"required"`
	Comment  string    `json:"comment"`
}

// ReviewUsecase defines the interface for review submission and the derived
// vendor rating aggregate.
type ReviewUsecase interface {
	// SubmitReview persists the review and recomputes the vendor's mean
	// rating and review count from a full rescan of its reviews.
	SubmitReview(ctx context.Context, studentID uuid.UUID, input *SubmitReviewInput) (*entity.Review, error)
}
