package kv

import (
	"context"
	"testing"
	"time"

	"washline/internal/domain/entity"
	"washline/internal/domain/repository"
	"washline/internal/infra/store/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(studentID, vendorID uuid.UUID, at time.Time) *entity.Order {
	return &entity.Order{
		ID:        entity.NewRecordID(at, studentID),
		StudentID: studentID,
		VendorID:  vendorID,
		Services: []entity.OrderItem{
			{Name: "Shirt", Price: 5, Quantity: 2},
		},
		Status:     entity.OrderPending,
		TotalPrice: 10,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

func TestOrderRepository_SaveAndFindByID(t *testing.T) {
	store := memory.New()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	order := makeOrder(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, order.StudentID, found.StudentID)
	assert.Equal(t, entity.OrderPending, found.Status)
	assert.InDelta(t, 10, found.TotalPrice, 1e-9)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewOrderRepository(memory.New())

	_, err := repo.FindByID(context.Background(), "123-absent")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_IndexesIsolateStudentAndVendor(t *testing.T) {
	store := memory.New()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	studentA := uuid.New()
	studentB := uuid.New()
	vendor := uuid.New()
	base := time.Now()

	orderA := makeOrder(studentA, vendor, base)
	orderB := makeOrder(studentB, vendor, base.Add(time.Millisecond))
	require.NoError(t, repo.Save(ctx, orderA))
	require.NoError(t, repo.Save(ctx, orderB))

	forA, err := repo.FindByStudent(ctx, studentA)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, orderA.ID, forA[0].ID)

	forVendor, err := repo.FindByVendor(ctx, vendor)
	require.NoError(t, err)
	require.Len(t, forVendor, 2)
	for _, o := range forVendor {
		assert.Equal(t, vendor, o.VendorID)
	}
}

func TestOrderRepository_ListsChronologically(t *testing.T) {
	store := memory.New()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	student := uuid.New()
	vendor := uuid.New()
	base := time.Now()

	second := makeOrder(student, vendor, base.Add(time.Second))
	first := makeOrder(student, vendor, base)
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))

	orders, err := repo.FindByStudent(ctx, student)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestOrderRepository_SkipsDanglingPointers(t *testing.T) {
	store := memory.New()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	student := uuid.New()
	vendor := uuid.New()
	kept := makeOrder(student, vendor, time.Now())
	orphaned := makeOrder(student, vendor, time.Now().Add(time.Millisecond))
	require.NoError(t, repo.Save(ctx, kept))
	require.NoError(t, repo.Save(ctx, orphaned))

	// Simulate a partial write: the primary record vanished but the index
	// pointers survived.
	memory.Delete(store, orderKey(orphaned.ID))

	orders, err := repo.FindByStudent(ctx, student)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, kept.ID, orders[0].ID)
}
