package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrKeyNotFound is returned when a key is not found in the store.
var ErrKeyNotFound = errors.New("key not found")

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// Store is the key-value abstraction the repositories are built on.
// Values are JSON documents; ListByPrefix returns them raw so callers
// decode into their own record types. Implementations must make each
// single-key operation atomic; no multi-key transaction is offered, so
// read-then-write sequences race and the last writer wins.
type Store interface {
	// Get retrieves the value at key and unmarshals it into v.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string, v any) error
	// Set marshals v and stores it at key, overwriting any prior value.
	Set(ctx context.Context, key string, v any) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// ListByPrefix returns the raw values of every key with the given
	// prefix, in key order.
	ListByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

// GetAllByPrefix retrieves and decodes every record under a prefix.
func GetAllByPrefix[T any](ctx context.Context, s Store, prefix string) ([]T, error) {
	raw, err := s.ListByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	results := make([]T, 0, len(raw))
	for _, data := range raw {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}
