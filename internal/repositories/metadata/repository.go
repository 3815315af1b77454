// Package metadata is a small key/value store inside the tracker database,
// used to remember client-side state such as the saved session.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key or common.ErrorNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
