// Package cache provides small key-value stores with expiry for upstream
// responses.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store is a key-value store whose entries may expire.
// A non-positive ttl means the entry does not expire.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GetJSON looks up key and decodes the stored JSON into v.
// It reports whether the key was present.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("could not decode cached '%s' (%w)", key, err)
	}
	return true, nil
}

// SetJSON stores v as JSON under key.
func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode '%s' for caching (%w)", key, err)
	}
	return s.Set(ctx, key, data, ttl)
}
