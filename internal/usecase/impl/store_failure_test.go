package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "washline/internal/domain/errors"
	"washline/internal/domain/kvstore"
	"washline/internal/infra/persistence/kv"

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

// A store failure must keep its STORE_EXECUTE_FAILED identity through the
// use case's wrapping so the HTTP layer can report it as an upstream error
// instead of a generic 500.
func TestOrderService_StoreFailureKeepsErrorCode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orderRepo := kv.NewOrderRepository(failingStore{})
	vendorRepo := kv.NewVendorRepository(failingStore{})
	svc := NewOrderService(orderRepo, vendorRepo, logger)

	studentID := uuid.New()
	_, err := svc.ListForStudent(context.Background(), studentID, studentID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}
