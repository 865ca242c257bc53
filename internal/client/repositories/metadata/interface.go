// Package metadata is the device-local key-value store: the persisted
// session values live here under fixed keys.
package metadata

import (
	"context"
)

// Keys under which the session is persisted.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
