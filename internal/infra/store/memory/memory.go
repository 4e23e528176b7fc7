// Package memory contains an in-process implementation of the key-value
// store contract, used for local development and tests.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"washline/internal/domain/kvstore"

	"github.com/pkg/errors"
)

// store is a mutex-guarded map satisfying kvstore.Store. Prefix scans return
// entries sorted by key ascending, matching the backing table's behavior.
type store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory store.
func New() kvstore.Store {
	return &store{
		data: make(map[string][]byte),
	}
}

// Get returns the raw JSON value for key, or kvstore.ErrKeyNotFound.
func (s *store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, kvstore.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Set writes value (JSON-marshaled) under key, creating or overwriting.
func (s *store) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = raw

	return nil
}

// GetByPrefix returns all entries whose key starts with prefix, key-ascending.
func (s *store) GetByPrefix(_ context.Context, prefix string) ([]kvstore.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]kvstore.Entry, 0)
	for key, value := range s.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		out := make([]byte, len(value))
		copy(out, value)
		entries = append(entries, kvstore.Entry{Key: key, Value: out})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries, nil
}

// Delete removes a key directly from the underlying map. It is not part of
// the kvstore.Store contract: the backend exposes no delete operation and no
// production path ever removes a record. It exists only so tests in other
// packages can simulate the partial state left behind by a crash between a
// primary record write and its pointer row writes. No-op for any other Store
// implementation.
func Delete(s kvstore.Store, key string) {
	memStore, ok := s.(*store)
	if !ok {
		return
	}

	memStore.mu.Lock()
	defer memStore.mu.Unlock()

	delete(memStore.data, key)
}
