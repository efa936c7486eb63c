// Package storage persists the checklist as string values under string keys.
// Backends report errors; Adapter turns them into silent no-ops so callers
// never fail because persistence is unavailable.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// KV is a string-keyed text store. Get returns ErrNotFound for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
