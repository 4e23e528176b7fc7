// Package kv contains the concrete implementation of the persistence layer
// on top of the key-value store contract.
//
// The key naming scheme stands in for a relational schema. Each entity has a
// primary record under "entity:<id>", and secondary lookups are served by
// pointer rows under "entity:<dimension>:<value>:<id>" whose value is the
// primary id. The store offers no multi-key transactions, so a primary record
// and its pointer rows are written separately: a crash between the writes can
// leave a dangling pointer. Readers tolerate that by skipping pointers whose
// primary record is missing instead of surfacing an error.
package kv

import (
	"github.com/google/uuid"
)

const (
	userKeyPrefix      = "user:"
	credentialPrefix   = "auth:email:"
	vendorKeyPrefix    = "vendor:"
	vendorListPrefix   = "vendor:list:"
	orderKeyPrefix     = "order:"
	orderStudentPrefix = "order:student:"
	orderVendorPrefix  = "order:vendor:"
	reviewVendorPrefix = "review:vendor:"
)

func userKey(id uuid.UUID) string {
	return userKeyPrefix + id.String()
}

func credentialKey(email string) string {
	return credentialPrefix + email
}

func vendorKey(id uuid.UUID) string {
	return vendorKeyPrefix + id.String()
}

func vendorListKey(id uuid.UUID) string {
	return vendorListPrefix + id.String()
}

func orderKey(id string) string {
	return orderKeyPrefix + id
}

func orderStudentKey(studentID uuid.UUID, orderID string) string {
	return orderStudentPrefix + studentID.String() + ":" + orderID
}

func orderVendorKey(vendorID uuid.UUID, orderID string) string {
	return orderVendorPrefix + vendorID.String() + ":" + orderID
}

func reviewVendorKey(vendorID uuid.UUID, reviewID string) string {
	return reviewVendorPrefix + vendorID.String() + ":" + reviewID
}
