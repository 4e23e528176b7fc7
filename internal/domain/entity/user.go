// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record, mirroring what the identity provider
// stores at signup. It is owned exclusively by the account it describes.
type User struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`     // The user's login identifier. Immutable after signup.
	Name      string    `json:"name"`      // The user's display name.
	Role      Role      `json:"role"`      // One of student, vendor, agent. Immutable after signup.
	Phone     string    `json:"phone"`     // Contact phone number.
	Address   string    `json:"address"`   // Default campus address.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this account was created.
}

// Credential is the identity provider's record for email/password login.
// It is never exposed through the HTTP surface.
type Credential struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
