// Package store provides the cache-store abstraction used on the render path.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value cache with TTL support.
// The render path caches published site configurations here; the config
// service invalidates entries on publish. Both a process-local memory
// implementation and a Redis-backed one exist, selected by configuration.
type Store interface {
	Set(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	Del(keys ...string) error
	Exists(key string) (bool, error)
	SetNX(key string, value []byte, ttl time.Duration) (bool, error)
	Clear() error
	Close() error
}
