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

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo  repository.OrderRepository
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	vendorRepo repository.VendorRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:  orderRepo,
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// CreateOrder places an order for the authenticated student. Everything is
// validated before the first write; the total price is fixed at creation and
// never recomputed on later status changes.
func (srv *orderService) CreateOrder(ctx context.Context, studentID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Services) == 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("order must contain at least one service"))
	}
	for _, item := range input.Services {
		if item.Quantity < 1 {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("service quantity must be at least 1"))
		}
		if item.Price < 0 {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("service price must not be negative"))
		}
	}

	if _, err := srv.vendorRepo.FindByID(ctx, input.VendorID); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
		}

		return nil, errors.Wrap(err, "failed to load vendor record")
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:              entity.NewRecordID(now, studentID),
		StudentID:       studentID,
		VendorID:        input.VendorID,
		Services:        input.Services,
		PickupAddress:   input.PickupAddress,
		DeliveryAddress: input.DeliveryAddress,
		PickupTime:      input.PickupTime,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
		Status:          entity.OrderPending,
		TotalPrice:      entity.TotalPrice(input.Services),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.orderRepo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	srv.logger.Info("Order created",
		slog.String("orderID", order.ID),
		slog.String("studentID", studentID.String()),
		slog.String("vendorID", input.VendorID.String()),
		slog.Float64("totalPrice", order.TotalPrice),
	)

	return order, nil
}

// ListForStudent returns the student's own orders. Self-access only.
func (srv *orderService) ListForStudent(ctx context.Context, callerID, studentID uuid.UUID) ([]*entity.Order, error) {
	if callerID != studentID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	orders, err := srv.orderRepo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list student orders")
	}

	return orders, nil
}

// ListForVendor returns the vendor's own order queue. Self-access only.
func (srv *orderService) ListForVendor(ctx context.Context, callerID, vendorID uuid.UUID) ([]*entity.Order, error) {
	if callerID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	orders, err := srv.orderRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor orders")
	}

	return orders, nil
}

// UpdateStatus moves an order along the delivery lifecycle. Only the owning
// vendor may act, and only along a transition the state machine allows.
func (srv *orderService) UpdateStatus(ctx context.Context, actingVendorID uuid.UUID, orderID string, newStatus entity.OrderStatus) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.VendorID != actingVendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails(
			"cannot move from " + order.Status.String() + " to " + newStatus.String(),
		))
	}

	order.Status = newStatus
	order.UpdatedAt = time.Now().UTC()

	if err := srv.orderRepo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	srv.logger.Info("Order status updated",
		slog.String("orderID", order.ID),
		slog.String("status", newStatus.String()),
	)

	return order, nil
}
