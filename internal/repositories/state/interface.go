package state

import (
	"context"
)

// Repository is a named-blob store: each key holds one opaque JSON document.
// It is the portal's equivalent of a browser's local key-value storage.
type Repository interface {
	// Get returns the blob stored under key, or (nil, nil) if the key
	// does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous blob.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the blob stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error
}
