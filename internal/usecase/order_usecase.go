package usecase

import (
	"context"

	"washline/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	VendorID        uuid.UUID          `json:"vendorId" validate:"required"`
	Services        []entity.OrderItem `json:"services" validate:"required,min=1,dive"`
	PickupAddress   string             `json:"pickupAddress"`
	DeliveryAddress string             `json:"deliveryAddress"`
	PickupTime      string             `json:"pickupTime"`
	PaymentMethod   string             `json:"paymentMethod"`
	Notes           string             `json:"notes"`
}

// UpdateOrderStatusInput carries the requested lifecycle transition.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase defines the interface for the order lifecycle.
type OrderUsecase interface {
	// CreateOrder places an order for the authenticated student. The total
	// price is computed here, once, and never recomputed afterwards.
	CreateOrder(ctx context.Context, studentID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// ListForStudent returns the student's orders; callerID must equal
	// studentID (self-access only, no admin override in this layer).
	ListForStudent(ctx context.Context, callerID, studentID uuid.UUID) ([]*entity.Order, error)

	// ListForVendor returns the vendor's order queue; callerID must equal
	// vendorID.
	ListForVendor(ctx context.Context, callerID, vendorID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus moves an order along the lifecycle. Only the owning
	// vendor may do this, and only along a legal transition.
	UpdateStatus(ctx context.Context, actingVendorID uuid.UUID, orderID string, newStatus entity.OrderStatus) (*entity.Order, error)
}
