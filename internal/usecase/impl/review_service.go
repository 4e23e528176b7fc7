package impl

import (
	"context"
	"log/slog"
	"time"

	"washline/internal/domain/entity"
	domainerrors "washline/internal/domain/errors"
	"washline/internal/domain/repository"
	"washline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	vendorRepo repository.VendorRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// SubmitReview persists the review, then recomputes the vendor's rating
// aggregate from a full rescan of its reviews. Two students reviewing the
// same vendor at the same time can race on the aggregate write; the loser's
// rescan is off by at most one review until the next submission repairs it,
// which is acceptable at this write volume.
func (srv *reviewService) SubmitReview(ctx context.Context, studentID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, errors.WithStack(domainerrors.ErrInvalidRating)
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
		}

		return nil, errors.Wrap(err, "failed to load vendor record")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.StudentID != studentID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	now := time.Now().UTC()
	review := &entity.Review{
		ID:        entity.NewRecordID(now, studentID),
		StudentID: studentID,
		VendorID:  input.VendorID,
		OrderID:   input.OrderID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
	}

	if err := srv.reviewRepo.Save(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to save review")
	}

	reviews, err := srv.reviewRepo.FindByVendor(ctx, input.VendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rescan vendor reviews")
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	vendor.ReviewCount = len(reviews)
	vendor.Rating = float64(sum) / float64(len(reviews))

	if err := srv.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to save vendor rating aggregate")
	}

	srv.logger.Info("Review submitted",
		slog.String("reviewID", review.ID),
		slog.String("vendorID", input.VendorID.String()),
		slog.Int("rating", input.Rating),
		slog.Float64("vendorRating", vendor.Rating),
		slog.Int("reviewCount", vendor.ReviewCount),
	)

	return review, nil
}
