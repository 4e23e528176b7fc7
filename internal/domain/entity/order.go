package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderItem is a catalog entry selected on an order, with the quantity
// requested. Price is copied from the vendor catalog at order time so later
// catalog edits never change a placed order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"` // Always >= 1.
}

// Order is a student's pickup/delivery request against a single vendor.
// Everything except Status and UpdatedAt is immutable after creation.
type Order struct {
	ID              string      `json:"id"`
	StudentID       uuid.UUID   `json:"studentId"`
	VendorID        uuid.UUID   `json:"vendorId"`
	Services        []OrderItem `json:"services"`
	PickupAddress   string      `json:"pickupAddress"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PickupTime      string      `json:"pickupTime"`
	PaymentMethod   string      `json:"paymentMethod"`
	Notes           string      `json:"notes"`
	Status          OrderStatus `json:"status"`
	TotalPrice      float64     `json:"totalPrice"` // Computed once at creation, never recomputed.
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// TotalPrice sums price*quantity over the given items.
func TotalPrice(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// NewRecordID builds an order/review identifier from the creation instant and
// the acting user. Millisecond timestamps keep ids monotonically increasing in
// creation order, so a prefix scan returns records chronologically sorted
// without a separate timestamp index. Two records created by the same actor
// within the same millisecond collide on the same id and the later write wins;
// human-driven order and review submission stays well outside that window.
func NewRecordID(at time.Time, actorID uuid.UUID) string {
	return fmt.Sprintf("%d-%s", at.UnixMilli(), actorID)
}
