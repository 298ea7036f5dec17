// Package kvstore defines the keyed document store the repositories are
// built on. Values are opaque byte slices; the JSON helpers layer encoding
// on top so callers work with domain types.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// GetJSON decodes the document under key into dest. A missing key is not an
// error: dest is left untouched and found is false.
func GetJSON(ctx context.Context, s Store, key string, dest interface{}) (found bool, err error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON encodes value and overwrites the document under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
