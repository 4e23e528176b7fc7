package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a vendor's geographic position, kept for client-side map display.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ServiceItem is a single entry in a vendor's service catalog.
type ServiceItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // Non-negative currency amount.
	Description string  `json:"description"`
}

// Vendor is a dry-cleaning vendor's public profile. Its ID always equals the
// owning vendor-role user's ID; there is at most one Vendor per account.
//
// Rating and ReviewCount are derived aggregates maintained exclusively by the
// review service. They are never accepted from clients.
type Vendor struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Address     string        `json:"address"`
	Phone       string        `json:"phone"`
	Location    Location      `json:"location"`
	Services    []ServiceItem `json:"services"`
	Image       string        `json:"image"`
	Rating      float64       `json:"rating"`      // Mean of all review ratings, 0 when unreviewed.
	ReviewCount int           `json:"reviewCount"` // Number of reviews referencing this vendor.
	CreatedAt   time.Time     `json:"createdAt"`
}
