package kv

import (
	"context"
	"testing"
	"time"

	domainerrors "washline/internal/domain/errors"
	"washline/internal/domain/kvstore"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every operation, standing in for an unreachable backend.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, any) error {
	return errors.New("connection refused")
}

func (failingStore) GetByPrefix(context.Context, string) ([]kvstore.Entry, error) {
	return nil, errors.New("connection refused")
}

func assertStoreExecuteError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestRepositories_StoreFailureSurfacesAsStoreExecuteError(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	vendorID := uuid.New()

	orderRepo := NewOrderRepository(failingStore{})
	_, err := orderRepo.FindByID(ctx, "1700000000000-"+studentID.String())
	assertStoreExecuteError(t, err)
	_, err = orderRepo.FindByStudent(ctx, studentID)
	assertStoreExecuteError(t, err)
	assertStoreExecuteError(t, orderRepo.Save(ctx, makeOrder(studentID, vendorID, time.Now())))

	userRepo := NewUserRepository(failingStore{})
	_, err = userRepo.FindByID(ctx, studentID)
	assertStoreExecuteError(t, err)

	credentialRepo := NewCredentialRepository(failingStore{})
	_, err = credentialRepo.FindByEmail(ctx, "alice@campus.edu")
	assertStoreExecuteError(t, err)

	vendorRepo := NewVendorRepository(failingStore{})
	_, err = vendorRepo.FindByID(ctx, vendorID)
	assertStoreExecuteError(t, err)
	_, err = vendorRepo.FindAll(ctx)
	assertStoreExecuteError(t, err)

	reviewRepo := NewReviewRepository(failingStore{})
	_, err = reviewRepo.FindByVendor(ctx, vendorID)
	assertStoreExecuteError(t, err)
}
