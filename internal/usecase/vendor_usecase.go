package usecase

import (
	"context"

	"washline/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVendorInput defines the data required to create a vendor profile.
type CreateVendorInput struct {
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description"`
	Address     string               `json:"address"`
	Phone       string               `json:"phone"`
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	Services    []entity.ServiceItem `json:"services" validate:"omitempty,dive"`
	Image       string               `json:"image"`
}

// UpdateVendorInput carries a partial vendor profile update. Nil fields are
// left untouched. Rating and reviewCount are derived aggregates and cannot be
// set through this path.
type UpdateVendorInput struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Address     *string               `json:"address"`
	Phone       *string               `json:"phone"`
	Location    *entity.Location      `json:"location"`
	Services    *[]entity.ServiceItem `json:"services"`
	Image       *string               `json:"image"`
}

// VendorDetail bundles a vendor with its reviews for the public detail view.
type VendorDetail struct {
	Vendor  *entity.Vendor   `json:"vendor"`
	Reviews []*entity.Review `json:"reviews"`
}

// VendorUsecase defines the interface for vendor catalog operations.
type VendorUsecase interface {
	// CreateVendor creates the vendor profile owned by ownerID. The owner
	// must hold the vendor role and may create at most one profile.
	CreateVendor(ctx context.Context, ownerID uuid.UUID, input *CreateVendorInput) (*entity.Vendor, error)
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*VendorDetail, error)
	// UpdateVendor applies a partial update; callerID must equal vendorID.
	UpdateVendor(ctx context.Context, callerID, vendorID uuid.UUID, input *UpdateVendorInput) (*entity.Vendor, error)
}
