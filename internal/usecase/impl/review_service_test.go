package impl

import (
	"context"
	"testing"

	"washline/internal/domain/entity"
	domainerrors "washline/internal/domain/errors"
	"washline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_SubmitReviewUpdatesAggregate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	vendor := f.createVendor(t, ctx, owner.ID)

	students := []string{"a@campus.edu", "b@campus.edu", "c@campus.edu"}
	ratings := []int{5, 4, 3}
	for i, email := range students {
		student := f.signup(t, ctx, email, entity.RoleStudent)
		order := f.placeOrder(t, ctx, student.ID, vendor.ID)

		review, err := f.reviews.SubmitReview(ctx, student.ID, &usecase.SubmitReviewInput{
			VendorID: vendor.ID,
			OrderID:  order.ID,
			Rating:   ratings[i],
			Comment:  "quick turnaround",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, review.ID)
		assert.Equal(t, ratings[i], review.Rating)
	}

	detail, err := f.vendors.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, detail.Vendor.ReviewCount)
	assert.InDelta(t, 4.0, detail.Vendor.Rating, 1e-9)
	assert.Len(t, detail.Reviews, 3)
}

func TestReviewService_RatingBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student := f.signup(t, ctx, "alice@campus.edu", entity.RoleStudent)
	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	vendor := f.createVendor(t, ctx, owner.ID)
	order := f.placeOrder(t, ctx, student.ID, vendor.ID)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.reviews.SubmitReview(ctx, student.ID, &usecase.SubmitReviewInput{
			VendorID: vendor.ID,
			OrderID:  order.ID,
			Rating:   rating,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}

	// Boundary values are accepted.
	for _, rating := range []int{entity.MinRating, entity.MaxRating} {
		_, err := f.reviews.SubmitReview(ctx, student.ID, &usecase.SubmitReviewInput{
			VendorID: vendor.ID,
			OrderID:  order.ID,
			Rating:   rating,
		})
		assert.NoError(t, err)
	}
}

func TestReviewService_UnknownVendor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student := f.signup(t, ctx, "alice@campus.edu", entity.RoleStudent)

	_, err := f.reviews.SubmitReview(ctx, student.ID, &usecase.SubmitReviewInput{
		VendorID: uuid.New(),
		OrderID:  "1700000000000-" + uuid.NewString(),
		Rating:   5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestReviewService_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student := f.signup(t, ctx, "alice@campus.edu", entity.RoleStudent)
	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	vendor := f.createVendor(t, ctx, owner.ID)

	_, err := f.reviews.SubmitReview(ctx, student.ID, &usecase.SubmitReviewInput{
		VendorID: vendor.ID,
		OrderID:  "1700000000000-" + uuid.NewString(),
		Rating:   5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestReviewService_ForbiddenForOtherStudentsOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.signup(t, ctx, "alice@campus.edu", entity.RoleStudent)
	mallory := f.signup(t, ctx, "mallory@campus.edu", entity.RoleStudent)
	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	vendor := f.createVendor(t, ctx, owner.ID)
	order := f.placeOrder(t, ctx, alice.ID, vendor.ID)

	_, err := f.reviews.SubmitReview(ctx, mallory.ID, &usecase.SubmitReviewInput{
		VendorID: vendor.ID,
		OrderID:  order.ID,
		Rating:   1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// The failed submission must not touch the aggregate.
	detail, err := f.vendors.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.Vendor.ReviewCount)
	assert.Zero(t, detail.Vendor.Rating)
}
