// Package store persists the two catalog collections as serialized blobs in
// a pluggable key-value backend.
package store

import (
	"context"
	"errors"
)

// Fixed keys for the two top-level collections. The values match the
// original deployment so previously stored data stays readable.
const (
	CategoriesKey = "history_app_categories"
	ExhibitsKey   = "history_app_exhibits"
)

// Driver identifies a store backend.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
	DriverMySQL  Driver = "mysql"
	DriverSQLite Driver = "sqlite"
)

// ErrUnknownDriver is returned by Open for an unrecognized driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// Store is a fallible key-value backend. Get reports absence through its
// second return value, not as an error. Put fully overwrites the value under
// key (last write wins; there is no cross-writer conflict detection).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
