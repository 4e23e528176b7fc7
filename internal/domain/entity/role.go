// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleStudent indicates a student placing pickup/delivery orders.
	RoleStudent Role = "student"
	// RoleVendor indicates a dry-cleaning vendor managing a catalog and order queue.
	RoleVendor Role = "vendor"
	// RoleAgent indicates a delivery agent.
	RoleAgent Role = "agent"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleVendor, RoleAgent:
		return true
	default:
		return false
	}
}
