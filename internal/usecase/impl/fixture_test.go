package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"washline/config"
	"washline/internal/domain/entity"
	"washline/internal/domain/kvstore"
	"washline/internal/infra/auth"
	"washline/internal/infra/persistence/kv"
	"washline/internal/infra/store/memory"
	"washline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture wires the full service stack over an in-memory store so every test
// exercises the real repositories and key scheme.
type fixture struct {
	store   kvstore.Store
	users   usecase.UserUsecase
	vendors usecase.VendorUsecase
	orders  usecase.OrderUsecase
	reviews usecase.ReviewUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := memory.New()
	userRepo := kv.NewUserRepository(store)
	credentialRepo := kv.NewCredentialRepository(store)
	vendorRepo := kv.NewVendorRepository(store)
	orderRepo := kv.NewOrderRepository(store)
	reviewRepo := kv.NewReviewRepository(store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		store:   store,
		users:   NewUserService(userRepo, credentialRepo, auth.NewBcryptHasher(cfg), tokenSvc, logger),
		vendors: NewVendorService(vendorRepo, userRepo, reviewRepo, logger),
		orders:  NewOrderService(orderRepo, vendorRepo, logger),
		reviews: NewReviewService(reviewRepo, orderRepo, vendorRepo, logger),
	}
}

func (f *fixture) signup(t *testing.T, ctx context.Context, email string, role entity.Role) *entity.User {
	t.Helper()

	user, err := f.users.Signup(ctx, &usecase.SignupInput{
		Email:    email,
		Password: "password123",
		Name:     "Test User",
		Role:     role.String(),
	})
	require.NoError(t, err)

	return user
}

func (f *fixture) createVendor(t *testing.T, ctx context.Context, ownerID uuid.UUID) *entity.Vendor {
	t.Helper()

	vendor, err := f.vendors.CreateVendor(ctx, ownerID, &usecase.CreateVendorInput{
		Name:    "Campus Cleaners",
		Address: "12 College Rd",
		Services: []entity.ServiceItem{
			{Name: "Shirt", Price: 5, Description: "Wash and press"},
			{Name: "Suit", Price: 15},
		},
	})
	require.NoError(t, err)

	return vendor
}

func (f *fixture) placeOrder(t *testing.T, ctx context.Context, studentID, vendorID uuid.UUID) *entity.Order {
	t.Helper()

	order, err := f.orders.CreateOrder(ctx, studentID, &usecase.CreateOrderInput{
		VendorID: vendorID,
		Services: []entity.OrderItem{
			{Name: "Shirt", Price: 5, Quantity: 2},
		},
		PickupAddress:   "Dorm A, Room 101",
		DeliveryAddress: "Dorm A, Room 101",
		PickupTime:      time.Now().Add(2 * time.Hour).Format(time.RFC3339),
		PaymentMethod:   "cash",
	})
	require.NoError(t, err)

	return order
}
