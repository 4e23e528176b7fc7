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

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo repository.VendorRepository
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(
	vendorRepo repository.VendorRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: vendorRepo,
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// CreateVendor creates the profile owned by ownerID. A vendor's id always
// equals the owning vendor-role user's id, and each account gets exactly one
// profile.
func (srv *vendorService) CreateVendor(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateVendorInput) (*entity.Vendor, error) {
	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load owner record")
	}
	if owner.Role != entity.RoleVendor {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("only vendor accounts can create a vendor profile"))
	}

	if _, err := srv.vendorRepo.FindByID(ctx, ownerID); err == nil {
		return nil, errors.WithStack(domainerrors.ErrVendorAlreadyExists)
	} else if !errors.Is(err, repository.ErrVendorNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing vendor profile")
	}

	services := input.Services
	if services == nil {
		services = []entity.ServiceItem{}
	}

	vendor := &entity.Vendor{
		ID:          ownerID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		Location: entity.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		Services:    services,
		Image:       input.Image,
		Rating:      0,
		ReviewCount: 0,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to save vendor profile")
	}

	srv.logger.Info("Vendor profile created", slog.String("vendorID", vendor.ID.String()))

	return vendor, nil
}

// ListVendors returns every vendor on the public listing.
func (srv *vendorService) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// GetVendor returns the public detail view: the vendor and its reviews.
func (srv *vendorService) GetVendor(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorDetail, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
		}

		return nil, errors.Wrap(err, "failed to load vendor record")
	}

	reviews, err := srv.reviewRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor reviews")
	}

	return &usecase.VendorDetail{Vendor: vendor, Reviews: reviews}, nil
}

// UpdateVendor applies a partial update to the caller's own profile. The
// rating aggregates are not touched here; only the review service writes them.
func (srv *vendorService) UpdateVendor(ctx context.Context, callerID, vendorID uuid.UUID, input *usecase.UpdateVendorInput) (*entity.Vendor, error) {
	if callerID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
		}

		return nil, errors.Wrap(err, "failed to load vendor record")
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.Description != nil {
		vendor.Description = *input.Description
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.Location != nil {
		vendor.Location = *input.Location
	}
	if input.Services != nil {
		vendor.Services = *input.Services
	}
	if input.Image != nil {
		vendor.Image = *input.Image
	}

	if err := srv.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to save vendor profile")
	}

	return vendor, nil
}
