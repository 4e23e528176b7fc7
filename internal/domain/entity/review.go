package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a student's one-off rating of a vendor for a specific order.
// Reviews are immutable after creation.
type Review struct {
	ID        string    `json:"id"`
	StudentID uuid.UUID `json:"studentId"`
	VendorID  uuid.UUID `json:"vendorId"`
	OrderID   string    `json:"orderId"`
	Rating    int       `json:"rating"` // Integer in [MinRating, MaxRating].
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidRating reports whether rating is within the accepted bounds.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
