// Package kvstore defines the contract of the external key-value storage
// engine. The engine offers only per-key atomic get/set and a prefix scan;
// there are no multi-key transactions and no compare-and-swap, so everything
// above this interface must tolerate non-atomic multi-key writes.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// Entry is a single key/value pair returned by a prefix scan.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the persistence contract for all record repositories.
// Values are JSON documents; Set marshals, callers of Get unmarshal.
type Store interface {
	// Get returns the raw JSON value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value (JSON-marshaled) under key, creating or overwriting.
	// The write is atomic for this single key only.
	Set(ctx context.Context, key string, value any) error

	// GetByPrefix returns all entries whose key starts with prefix,
	// sorted by key in ascending order.
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}
