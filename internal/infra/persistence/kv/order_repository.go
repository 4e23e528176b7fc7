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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	store kvstore.Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store kvstore.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	raw, err := repo.store.Get(ctx, orderKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		// For other store errors, return a generic store error
		return nil, domainerrors.NewStoreExecuteError(err, "failed to get order record")
	}

	var order entity.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, errors.Wrap(err, "failed to decode order record")
	}

	return &order, nil
}

// FindByStudent retrieves all orders placed by a student. Order ids embed
// their creation timestamp, so the key-ascending scan comes back oldest first.
func (repo *orderRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Order, error) {
	return repo.resolveOrderPointers(ctx, orderStudentPrefix+studentID.String()+":")
}

// FindByVendor retrieves all orders directed at a vendor, oldest first.
func (repo *orderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error) {
	return repo.resolveOrderPointers(ctx, orderVendorPrefix+vendorID.String()+":")
}

// Save persists an order and refreshes its student and vendor index rows.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	if err := repo.store.Set(ctx, orderKey(order.ID), order); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save order record")
	}

	if err := repo.store.Set(ctx, orderStudentKey(order.StudentID, order.ID), order.ID); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save student order pointer")
	}

	if err := repo.store.Set(ctx, orderVendorKey(order.VendorID, order.ID), order.ID); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save vendor order pointer")
	}

	return nil
}

// resolveOrderPointers scans an index prefix and loads each referenced order,
// skipping pointers whose primary record is missing.
func (repo *orderRepository) resolveOrderPointers(ctx context.Context, prefix string) ([]*entity.Order, error) {
	entries, err := repo.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to scan order index")
	}

	orders := make([]*entity.Order, 0, len(entries))
	for _, entry := range entries {
		var id string
		if err := json.Unmarshal(entry.Value, &id); err != nil {
			return nil, errors.Wrap(err, "failed to decode order pointer")
		}

		raw, err := repo.store.Get(ctx, orderKey(id))
		if err != nil {
			if errors.Is(err, kvstore.ErrKeyNotFound) {
				continue // dangling pointer
			}

			return nil, domainerrors.NewStoreExecuteError(err, "failed to resolve order pointer")
		}

		var order entity.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			return nil, errors.Wrap(err, "failed to decode order record")
		}
		orders = append(orders, &order)
	}

	return orders, nil
}
