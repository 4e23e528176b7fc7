package impl

import (
	"context"
	"testing"

	"washline/internal/domain/entity"
	domainerrors "washline/internal/domain/errors"
	"washline/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorService_CreateVendor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	vendor := f.createVendor(t, ctx, owner.ID)

	// The profile id always equals the owning account's id.
	assert.Equal(t, owner.ID, vendor.ID)
	assert.Equal(t, "Campus Cleaners", vendor.Name)
	assert.Len(t, vendor.Services, 2)
	assert.Zero(t, vendor.Rating)
	assert.Zero(t, vendor.ReviewCount)
}

func TestVendorService_CreateVendorDefaultsServices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)

	vendor, err := f.vendors.CreateVendor(ctx, owner.ID, &usecase.CreateVendorInput{Name: "Bare Minimum"})
	require.NoError(t, err)
	assert.NotNil(t, vendor.Services)
	assert.Empty(t, vendor.Services)
}

func TestVendorService_CreateVendorRequiresVendorRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	student := f.signup(t, ctx, "alice@campus.edu", entity.RoleStudent)

	_, err := f.vendors.CreateVendor(ctx, student.ID, &usecase.CreateVendorInput{Name: "Side Hustle"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVendorService_CreateVendorDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	f.createVendor(t, ctx, owner.ID)

	_, err := f.vendors.CreateVendor(ctx, owner.ID, &usecase.CreateVendorInput{Name: "Second Shop"})
	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_ListVendors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	second := f.signup(t, ctx, "press@campus.edu", entity.RoleVendor)
	f.createVendor(t, ctx, first.ID)
	f.createVendor(t, ctx, second.ID)

	vendors, err := f.vendors.ListVendors(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 2)
}

func TestVendorService_UpdateVendor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	vendor := f.createVendor(t, ctx, owner.ID)

	name := "Campus Cleaners Deluxe"
	services := []entity.ServiceItem{{Name: "Coat", Price: 20}}
	updated, err := f.vendors.UpdateVendor(ctx, owner.ID, vendor.ID, &usecase.UpdateVendorInput{
		Name:     &name,
		Services: &services,
	})
	require.NoError(t, err)
	assert.Equal(t, "Campus Cleaners Deluxe", updated.Name)
	assert.Len(t, updated.Services, 1)
	// Untouched fields survive the partial update.
	assert.Equal(t, "12 College Rd", updated.Address)
}

func TestVendorService_UpdateVendorForbiddenForOthers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.signup(t, ctx, "clean@campus.edu", entity.RoleVendor)
	rival := f.signup(t, ctx, "rival@campus.edu", entity.RoleVendor)
	vendor := f.createVendor(t, ctx, owner.ID)

	name := "Hijacked"
	_, err := f.vendors.UpdateVendor(ctx, rival.ID, vendor.ID, &usecase.UpdateVendorInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVendorService_GetVendorNotFound(t *testing.T) {
	f := newFixture(t)

	student := f.signup(t, context.Background(), "alice@campus.edu", entity.RoleStudent)

	_, err := f.vendors.GetVendor(context.Background(), student.ID)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}
