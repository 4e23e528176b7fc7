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

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	store kvstore.Store
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(store kvstore.Store) repository.VendorRepository {
	return &vendorRepository{store: store}
}

// FindByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	raw, err := repo.store.Get(ctx, vendorKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		// For other store errors, return a generic store error
		return nil, domainerrors.NewStoreExecuteError(err, "failed to get vendor record")
	}

	return decodeVendor(raw)
}

// FindAll retrieves every vendor on the listing index. Listing pointers whose
// primary record is missing are skipped rather than reported: a crash between
// the two writes of Save can leave either side behind, and the read side is
// where that inconsistency gets absorbed.
func (repo *vendorRepository) FindAll(ctx context.Context) ([]*entity.Vendor, error) {
	entries, err := repo.store.GetByPrefix(ctx, vendorListPrefix)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to scan vendor listing index")
	}

	vendors := make([]*entity.Vendor, 0, len(entries))
	for _, entry := range entries {
		var id uuid.UUID
		if err := json.Unmarshal(entry.Value, &id); err != nil {
			return nil, errors.Wrap(err, "failed to decode vendor listing pointer")
		}

		raw, err := repo.store.Get(ctx, vendorKey(id))
		if err != nil {
			if errors.Is(err, kvstore.ErrKeyNotFound) {
				continue // dangling pointer
			}

			return nil, domainerrors.NewStoreExecuteError(err, "failed to resolve vendor listing pointer")
		}

		vendor, err := decodeVendor(raw)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}

	return vendors, nil
}

// Save persists a vendor record and refreshes its listing index row.
func (repo *vendorRepository) Save(ctx context.Context, vendor *entity.Vendor) error {
	if err := repo.store.Set(ctx, vendorKey(vendor.ID), vendor); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save vendor record")
	}

	if err := repo.store.Set(ctx, vendorListKey(vendor.ID), vendor.ID); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save vendor listing pointer")
	}

	return nil
}

func decodeVendor(raw []byte) (*entity.Vendor, error) {
	var vendor entity.Vendor
	if err := json.Unmarshal(raw, &vendor); err != nil {
		return nil, errors.Wrap(err, "failed to decode vendor record")
	}

	return &vendor, nil
}
